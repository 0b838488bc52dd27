package snake

// Autopilot steers a State toward its food with a one-step greedy rule.
// It drives headless runs; it is not an in-game opponent.
type Autopilot struct{}

// Choose returns the heading for the next tick. Moves that would hit the
// wall or the body are skipped; among safe moves the one closest to the food
// wins, preferring the current heading on ties. With no safe move it keeps
// the current heading.
func (Autopilot) Choose(s *State) Direction {
	cur := s.Direction()
	cfg := s.Config()
	food := s.Food()

	best := cur
	bestDist := -1
	for _, d := range [...]Direction{cur, Up, Right, Down, Left} {
		if d == cur.Opposite() {
			continue
		}
		next := s.Head().Add(d)
		if !next.In(cfg.Cols, cfg.Rows) || s.Occupied(next) {
			continue
		}
		dist := manhattan(next, food)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

func manhattan(a, b Cell) int {
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}
