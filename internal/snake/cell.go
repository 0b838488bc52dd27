package snake

import "fmt"

// Cell is one grid square, addressed by column and row.
type Cell struct {
	Col int
	Row int
}

// Add returns c shifted by the unit vector of d.
func (c Cell) Add(d Direction) Cell {
	dc, dr := d.Vector()
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// In reports whether c lies inside [0,cols)×[0,rows).
func (c Cell) In(cols, rows int) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < cols && c.Row < rows
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}
