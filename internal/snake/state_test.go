package snake

import (
	"math/rand"
	"testing"
	"time"
)

func newTestState(seed int64, opts ...Option) *State {
	return New(DefaultConfig(), rand.New(rand.NewSource(seed)), opts...) // #nosec G404 -- test
}

func assertFoodFree(t *testing.T, s *State) {
	t.Helper()
	if s.Occupied(s.Food()) {
		t.Fatalf("food %s lies on the body %v", s.Food(), s.Body())
	}
	if !s.Food().In(s.cfg.Cols, s.cfg.Rows) {
		t.Fatalf("food %s outside the board", s.Food())
	}
}

func TestNew_InitialRound(t *testing.T) {
	s := newTestState(1)
	if s.Len() != 1 || s.Head() != StartCell {
		t.Fatalf("expected single segment at %s, got %v", StartCell, s.Body())
	}
	if s.Direction() != Right {
		t.Fatalf("expected heading right, got %s", s.Direction())
	}
	if s.Score() != 0 || s.Speed() != BaseSpeed {
		t.Fatalf("expected score=0 speed=%v, got score=%d speed=%v", BaseSpeed, s.Score(), s.Speed())
	}
	assertFoodFree(t, s)
}

func TestAdvance_EatsFoodAndGrows(t *testing.T) {
	s := newTestState(7,
		WithBody(Cell{5, 5}),
		WithDirection(Right),
		WithFood(Cell{6, 5}),
	)
	if res := s.Advance(Right); res != Ate {
		t.Fatalf("expected Ate, got %s", res)
	}
	body := s.Body()
	if len(body) != 2 || body[0] != (Cell{6, 5}) || body[1] != (Cell{5, 5}) {
		t.Fatalf("expected body [(6,5) (5,5)], got %v", body)
	}
	if s.Score() != 1 {
		t.Fatalf("expected score 1, got %d", s.Score())
	}
	assertFoodFree(t, s)
}

func TestAdvance_LeftBoundaryEndsRound(t *testing.T) {
	s := newTestState(3, WithBody(Cell{0, 3}), WithDirection(Left))
	food := s.Food()
	if res := s.Advance(Left); res != GameOver {
		t.Fatalf("expected GameOver at left wall, got %s", res)
	}
	if s.Cause() != CauseWall {
		t.Fatalf("expected wall cause, got %s", s.Cause())
	}
	// State stays frozen until Reset.
	if s.Head() != (Cell{0, 3}) || s.Len() != 1 || s.Food() != food {
		t.Fatalf("state changed on game over: body=%v food=%s", s.Body(), s.Food())
	}
}

func TestAdvance_AllWalls(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		name string
		head Cell
		dir  Direction
	}{
		{"top", Cell{10, 0}, Up},
		{"bottom", Cell{10, cfg.Rows - 1}, Down},
		{"left", Cell{0, 10}, Left},
		{"right", Cell{cfg.Cols - 1, 10}, Right},
	}
	for _, tc := range cases {
		s := newTestState(5, WithBody(tc.head), WithDirection(tc.dir))
		if res := s.Advance(tc.dir); res != GameOver {
			t.Errorf("%s wall: expected GameOver, got %s", tc.name, res)
		}
	}
}

func loopBody() []Cell {
	return []Cell{{5, 5}, {5, 6}, {5, 7}, {4, 7}, {4, 6}, {4, 5}}
}

func TestAdvance_LoopedBodyFreeCell(t *testing.T) {
	s := newTestState(11, WithBody(loopBody()...), WithDirection(Up), WithFood(Cell{20, 20}))
	if res := s.Advance(Up); res != Continue {
		t.Fatalf("expected Continue moving to (5,4), got %s", res)
	}
	if s.Head() != (Cell{5, 4}) || s.Len() != 6 {
		t.Fatalf("expected head (5,4) len 6, got %v", s.Body())
	}
}

func TestAdvance_LoopedBodySelfCollision(t *testing.T) {
	s := newTestState(11, WithBody(loopBody()...), WithDirection(Up), WithFood(Cell{20, 20}))
	// Left from (5,5) is (4,5), the tail.
	if res := s.Advance(Left); res != GameOver {
		t.Fatalf("expected GameOver moving into (4,5), got %s", res)
	}
	if s.Cause() != CauseSelf {
		t.Fatalf("expected self cause, got %s", s.Cause())
	}
}

func TestAdvance_ReverseRequestIgnored(t *testing.T) {
	s := newTestState(2, WithBody(Cell{10, 10}, Cell{9, 10}), WithDirection(Right), WithFood(Cell{30, 20}))
	if res := s.Advance(Left); res != Continue {
		t.Fatalf("reverse request must not kill via the neck, got %s", res)
	}
	if s.Direction() != Right {
		t.Fatalf("expected heading to stay right, got %s", s.Direction())
	}
	if s.Head() != (Cell{11, 10}) {
		t.Fatalf("expected head (11,10), got %s", s.Head())
	}
}

func TestAdvance_DoubleTurnAcrossTicksIsLegal(t *testing.T) {
	s := newTestState(2, WithBody(Cell{10, 10}, Cell{9, 10}), WithDirection(Right), WithFood(Cell{30, 20}))
	s.Advance(Up)
	if res := s.Advance(Left); res != Continue {
		t.Fatalf("expected Continue after up then left, got %s", res)
	}
	if s.Direction() != Left || s.Head() != (Cell{9, 9}) {
		t.Fatalf("expected heading left at (9,9), got %s at %s", s.Direction(), s.Head())
	}
}

func TestAdvance_InvalidDirectionKeepsHeading(t *testing.T) {
	s := newTestState(2, WithBody(Cell{10, 10}), WithDirection(Down), WithFood(Cell{30, 20}))
	s.Advance(Direction(42))
	if s.Direction() != Down || s.Head() != (Cell{10, 11}) {
		t.Fatalf("expected to keep moving down, got %s at %s", s.Direction(), s.Head())
	}
}

func TestAdvance_SpeedUpEveryFifthPoint(t *testing.T) {
	s := newTestState(9, WithBody(Cell{0, 0}), WithDirection(Right))
	for i := 1; i <= 25; i++ {
		s.food = s.Head().Add(Right)
		if res := s.Advance(Right); res != Ate {
			t.Fatalf("point %d: expected Ate, got %s", i, res)
		}
		want := BaseSpeed - time.Duration(i/SpeedUpEvery)*SpeedStep
		if want < SpeedFloor {
			want = SpeedFloor
		}
		if s.Speed() != want {
			t.Fatalf("score %d: expected speed %v, got %v", s.Score(), want, s.Speed())
		}
	}
	if s.Speed() != 100*time.Millisecond {
		t.Fatalf("expected 100ms after 25 points, got %v", s.Speed())
	}
}

func TestAdvance_SpeedNeverBelowFloor(t *testing.T) {
	s := newTestState(9,
		WithBody(Cell{5, 5}),
		WithDirection(Right),
		WithScore(4),
		WithSpeed(55*time.Millisecond),
		WithFood(Cell{6, 5}),
	)
	s.Advance(Right)
	if s.Speed() != SpeedFloor {
		t.Fatalf("expected speed clamped to %v, got %v", SpeedFloor, s.Speed())
	}

	s.food = s.Head().Add(Right)
	s.score = 9
	s.Advance(Right)
	if s.Speed() != SpeedFloor {
		t.Fatalf("expected speed to stay at floor, got %v", s.Speed())
	}
}

func TestReset_RestoresRound(t *testing.T) {
	s := newTestState(4, WithBody(Cell{5, 5}), WithDirection(Down), WithScore(12), WithSpeed(90*time.Millisecond))
	s.food = Cell{5, 6}
	s.Advance(Down)
	s.Reset()
	if s.Len() != 1 || s.Head() != StartCell || s.Direction() != StartDirection {
		t.Fatalf("expected fresh snake, got %v heading %s", s.Body(), s.Direction())
	}
	if s.Score() != 0 || s.Speed() != BaseSpeed || s.Ticks() != 0 || s.Cause() != CauseNone {
		t.Fatalf("expected score=0 speed=%v ticks=0 cause=none, got %d %v %d %s",
			BaseSpeed, s.Score(), s.Speed(), s.Ticks(), s.Cause())
	}
	assertFoodFree(t, s)
}

func TestAdvance_FullBoardParksFood(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cols, cfg.Rows = 2, 1
	cfg.Start = Cell{0, 0}
	s := New(cfg, rand.New(rand.NewSource(1))) // #nosec G404 -- test
	if s.Food() != (Cell{1, 0}) {
		t.Fatalf("expected the only free cell (1,0), got %s", s.Food())
	}
	if res := s.Advance(Right); res != Ate {
		t.Fatalf("expected Ate, got %s", res)
	}
	if res := s.Advance(Right); res != GameOver {
		t.Fatalf("expected GameOver on a full board, got %s", res)
	}
}

func TestNew_SameSeedSameFood(t *testing.T) {
	a := newTestState(1234)
	b := newTestState(1234)
	for i := 0; i < 20; i++ {
		if a.Food() != b.Food() {
			t.Fatalf("reset %d: food diverged %s vs %s", i, a.Food(), b.Food())
		}
		a.Reset()
		b.Reset()
	}
}

// TestAdvance_Invariants plays many seeded rounds with random input and
// checks the per-tick properties on every Advance.
func TestAdvance_Invariants(t *testing.T) {
	input := rand.New(rand.NewSource(99)) // #nosec G404 -- test
	var pilot Autopilot
	for seed := int64(1); seed <= 20; seed++ {
		s := newTestState(seed)
		for tick := 0; tick < 2000; tick++ {
			prevLen, prevScore, prevDir := s.Len(), s.Score(), s.Direction()
			req := pilot.Choose(s)
			if input.Intn(4) == 0 {
				req = Direction(input.Intn(4))
			}
			res := s.Advance(req)
			if req == prevDir.Opposite() && s.Direction() != prevDir {
				t.Fatalf("seed %d tick %d: reverse request changed heading %s → %s", seed, tick, prevDir, s.Direction())
			}
			switch res {
			case Ate:
				if s.Len() != prevLen+1 || s.Score() != prevScore+1 {
					t.Fatalf("seed %d tick %d: Ate but len %d→%d score %d→%d", seed, tick, prevLen, s.Len(), prevScore, s.Score())
				}
				assertFoodFree(t, s)
			case Continue:
				if s.Len() != prevLen || s.Score() != prevScore {
					t.Fatalf("seed %d tick %d: Continue but len %d→%d score %d→%d", seed, tick, prevLen, s.Len(), prevScore, s.Score())
				}
				assertFoodFree(t, s)
			case GameOver:
				s.Reset()
				if s.Score() != 0 {
					t.Fatalf("seed %d: score not reset", seed)
				}
				continue
			}
			if s.Speed() < SpeedFloor {
				t.Fatalf("seed %d tick %d: speed %v below floor", seed, tick, s.Speed())
			}
			seen := map[Cell]bool{}
			for _, c := range s.Body() {
				if seen[c] {
					t.Fatalf("seed %d tick %d: duplicate cell %s in %v", seed, tick, c, s.Body())
				}
				seen[c] = true
			}
		}
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	s := newTestState(1, WithBody(Cell{3, 3}, Cell{2, 3}))
	snap := s.Snapshot()
	snap.Body[0] = Cell{0, 0}
	if s.Head() != (Cell{3, 3}) {
		t.Fatalf("snapshot aliases the body")
	}
	if snap.Score != s.Score() || snap.Food != s.Food() || snap.Dir != s.Direction() {
		t.Fatalf("snapshot mismatch: %+v", snap)
	}
}
