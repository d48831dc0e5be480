package entity

import "fmt"

// Size is the side length of every grid, sub-board and meta-board alike.
const Size = 3

// Coord addresses a cell (or a sub-board on the meta-board), rows and columns 0..2.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coord) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Grid is a 3x3 arrangement of marks stored row-major.
type Grid [Size][Size]Mark

func (that Grid) At(c Coord) Mark {
	return that[c.Row][c.Col]
}

func (that *Grid) set(c Coord, mark Mark) {
	that[c.Row][c.Col] = mark
}

// Full - reports whether no empty cell is left.
func (that *Grid) Full() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Point is a position in board-relative units: the board spans [0,1] on both axes.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WinLine is one of the eight lines of a grid, identified by its end cells.
type WinLine struct {
	Start Coord `json:"start"`
	End   Coord `json:"end"`
}

// Cells - returns the three cells of the line, from start to end.
func (that WinLine) Cells() [Size]Coord {
	dRow := step(that.End.Row - that.Start.Row)
	dCol := step(that.End.Col - that.Start.Col)

	var cells [Size]Coord
	for i := range cells {
		cells[i] = Coord{Row: that.Start.Row + i*dRow, Col: that.Start.Col + i*dCol}
	}

	return cells
}

// Endpoints - returns the centres of the start and end cells.
func (that WinLine) Endpoints() (Point, Point) {
	return cellCentre(that.Start), cellCentre(that.End)
}

func cellCentre(c Coord) Point {
	return Point{
		X: (float64(c.Col) + 0.5) / Size,
		Y: (float64(c.Row) + 0.5) / Size,
	}
}

func step(delta int) int {
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0
	}
}

// WinResult is the outcome of CheckWin. A zero value means no winner.
type WinResult struct {
	Winner Mark
	Line   WinLine
}

func (that WinResult) Found() bool {
	return that.Winner != Empty
}

// winLines is ordered by reporting precedence: rows, columns, main diagonal, anti-diagonal.
var winLines = [...]WinLine{
	{Start: Coord{0, 0}, End: Coord{0, 2}},
	{Start: Coord{1, 0}, End: Coord{1, 2}},
	{Start: Coord{2, 0}, End: Coord{2, 2}},
	{Start: Coord{0, 0}, End: Coord{2, 0}},
	{Start: Coord{0, 1}, End: Coord{2, 1}},
	{Start: Coord{0, 2}, End: Coord{2, 2}},
	{Start: Coord{0, 0}, End: Coord{2, 2}},
	{Start: Coord{0, 2}, End: Coord{2, 0}},
}

// CheckWin - reports the first completed line of the grid, if any.
func CheckWin(grid Grid) WinResult {
	for _, line := range winLines {
		cells := line.Cells()

		first := grid.At(cells[0])
		if first == Empty {
			continue
		}

		if grid.At(cells[1]) == first && grid.At(cells[2]) == first {
			return WinResult{Winner: first, Line: line}
		}
	}

	return WinResult{}
}
