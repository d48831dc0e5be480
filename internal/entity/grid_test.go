package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckWin_EveryLine(t *testing.T) {
	tests := []struct {
		name  string
		cells [Size]Coord
		line  WinLine
	}{
		{"top row", [Size]Coord{{0, 0}, {0, 1}, {0, 2}}, WinLine{Start: Coord{0, 0}, End: Coord{0, 2}}},
		{"middle row", [Size]Coord{{1, 0}, {1, 1}, {1, 2}}, WinLine{Start: Coord{1, 0}, End: Coord{1, 2}}},
		{"bottom row", [Size]Coord{{2, 0}, {2, 1}, {2, 2}}, WinLine{Start: Coord{2, 0}, End: Coord{2, 2}}},
		{"left column", [Size]Coord{{0, 0}, {1, 0}, {2, 0}}, WinLine{Start: Coord{0, 0}, End: Coord{2, 0}}},
		{"middle column", [Size]Coord{{0, 1}, {1, 1}, {2, 1}}, WinLine{Start: Coord{0, 1}, End: Coord{2, 1}}},
		{"right column", [Size]Coord{{0, 2}, {1, 2}, {2, 2}}, WinLine{Start: Coord{0, 2}, End: Coord{2, 2}}},
		{"main diagonal", [Size]Coord{{0, 0}, {1, 1}, {2, 2}}, WinLine{Start: Coord{0, 0}, End: Coord{2, 2}}},
		{"anti-diagonal", [Size]Coord{{0, 2}, {1, 1}, {2, 0}}, WinLine{Start: Coord{0, 2}, End: Coord{2, 0}}},
	}

	for _, tt := range tests {
		for _, mark := range []Mark{MarkA, MarkB} {
			t.Run(tt.name+" "+string(mark), func(t *testing.T) {
				// Given: a grid with only this line filled
				var grid Grid
				for _, c := range tt.cells {
					grid.set(c, mark)
				}

				// When: checking for a winner
				result := CheckWin(grid)

				// Then: the mark and the exact line are reported
				require.True(t, result.Found())
				assert.Equal(t, mark, result.Winner)
				assert.Equal(t, tt.line, result.Line)
				assert.Equal(t, tt.cells, result.Line.Cells())
			})
		}
	}
}

func TestCheckWin_NoWinner(t *testing.T) {
	t.Run("Empty grid", func(t *testing.T) {
		assert.False(t, CheckWin(Grid{}).Found())
	})

	t.Run("Full grid with mixed lines", func(t *testing.T) {
		// Given: a drawn grid
		grid := Grid{
			{MarkA, MarkB, MarkA},
			{MarkA, MarkB, MarkB},
			{MarkB, MarkA, MarkA},
		}

		// When: checking for a winner
		result := CheckWin(grid)

		// Then: nobody won
		assert.False(t, result.Found())
		assert.Equal(t, WinResult{}, result)
		assert.True(t, grid.Full())
	})

	t.Run("Two of a kind is not a line", func(t *testing.T) {
		grid := Grid{
			{MarkA, MarkA, Empty},
			{MarkB, MarkB, Empty},
			{Empty, Empty, Empty},
		}

		assert.False(t, CheckWin(grid).Found())
		assert.False(t, grid.Full())
	})
}

func TestCheckWin_TopRowScenario(t *testing.T) {
	// Given: an empty grid where A plays the top row
	var grid Grid
	grid.set(Coord{0, 0}, MarkA)
	grid.set(Coord{0, 1}, MarkA)
	grid.set(Coord{0, 2}, MarkA)

	// When: checking for a winner
	result := CheckWin(grid)

	// Then: A wins from (0,0) to (0,2)
	assert.Equal(t, WinResult{Winner: MarkA, Line: WinLine{Start: Coord{0, 0}, End: Coord{0, 2}}}, result)
}

func TestCheckWin_Precedence(t *testing.T) {
	t.Run("Row reported before column", func(t *testing.T) {
		// Given: a grid where the top row and the left column are both complete
		grid := Grid{
			{MarkA, MarkA, MarkA},
			{MarkA, MarkB, MarkB},
			{MarkA, MarkB, Empty},
		}

		// Then: the row wins the report
		assert.Equal(t, WinLine{Start: Coord{0, 0}, End: Coord{0, 2}}, CheckWin(grid).Line)
	})

	t.Run("Main diagonal reported before anti-diagonal", func(t *testing.T) {
		grid := Grid{
			{MarkB, Empty, MarkB},
			{Empty, MarkB, Empty},
			{MarkB, Empty, MarkB},
		}

		assert.Equal(t, WinLine{Start: Coord{0, 0}, End: Coord{2, 2}}, CheckWin(grid).Line)
	})
}

func TestWinLine_Endpoints(t *testing.T) {
	// Given: the anti-diagonal
	line := WinLine{Start: Coord{0, 2}, End: Coord{2, 0}}

	// When: asking for its endpoints
	from, to := line.Endpoints()

	// Then: they are the centres of the corner cells
	assert.InDelta(t, 5.0/6, from.X, 1e-9)
	assert.InDelta(t, 1.0/6, from.Y, 1e-9)
	assert.InDelta(t, 1.0/6, to.X, 1e-9)
	assert.InDelta(t, 5.0/6, to.Y, 1e-9)
}

func TestCoord_Valid(t *testing.T) {
	assert.True(t, Coord{0, 0}.Valid())
	assert.True(t, Coord{2, 2}.Valid())
	assert.False(t, Coord{-1, 0}.Valid())
	assert.False(t, Coord{0, 3}.Valid())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, MarkB, MarkA.Opponent())
	assert.Equal(t, MarkA, MarkB.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
}
