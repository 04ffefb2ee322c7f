package universe

import (
	"fmt"
	"sort"
	"strings"
)

type Cell bool

const (
	Alive Cell = true
	Dead  Cell = false
)

//String returns the character the cell is rendered with
func (c Cell) String() string {
	if c {
		return "O"
	}
	return " "
}

//Position is the x,y coordinate of a cell
type Position struct {
	X int
	Y int
}

//Generation is one complete assignment of states to the cells of the board.
//Implementations are storage strategies; a Generation is never mutated after it is built,
//Next always returns a new value computed from the frozen receiver.
type Generation interface {
	Width() int
	Height() int
	//Cell panics when x,y is outside the Width x Height box
	Cell(x int, y int) Cell
	//Neighbors counts the living cells around x,y, the board does not wrap
	Neighbors(x int, y int) int
	LiveCells() int
	Next() Generation
}

//Seeder decides the initial state of each cell while the generation is built
type Seeder func(x int, y int) Cell

//EngineFunc builds the first generation with the given storage strategy
type EngineFunc func(width int, height int, seed Seeder) Generation

//Engines holds the available storage strategies
var Engines = map[string]EngineFunc{
	"dense": func(width int, height int, seed Seeder) Generation {
		return NewDenseGeneration(width, height, seed)
	},
	"sparse": func(width int, height int, seed Seeder) Generation {
		return NewSparseGeneration(width, height, seed)
	},
	"sparse-inset": func(width int, height int, seed Seeder) Generation {
		return NewInsetSparseGeneration(width, height, seed)
	},
}

//EngineNames returns the sorted names of the registered engines
func EngineNames() (engineNames []string) {
	engineNames = make([]string, 0, len(Engines))
	for k := range Engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	return
}

//NextState applies the B3/S23 rule to one cell
func NextState(c Cell, liveNeighbours int) Cell {
	if liveNeighbours < 2 {
		return Dead
	} else if liveNeighbours > 3 {
		return Dead
	} else if liveNeighbours == 3 {
		return Alive
	} else if liveNeighbours == 2 && c == Alive {
		return Alive
	}
	return Dead
}

//Display renders the generation: one line per row, 'O' for alive and space for dead cells
func Display(g Generation) string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Cell(x, y) {
				b.WriteByte('O')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

//Equal reports whether both generations have the same size and the same cell states
func Equal(a Generation, b Generation) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.Cell(x, y) != b.Cell(x, y) {
				return false
			}
		}
	}
	return true
}

//DeadSeeder leaves every cell dead
func DeadSeeder(int, int) Cell {
	return Dead
}

//RandomSeeder makes every cell alive with the given probability, drawing one number per cell
func RandomSeeder(src RandomSource, density float64) Seeder {
	if src == nil {
		return DeadSeeder
	}
	return func(int, int) Cell {
		return Cell(src.Float64() < density)
	}
}

//CoordinatesSeeder makes the listed [x,y] coordinates alive
func CoordinatesSeeder(vc [][]int) Seeder {
	alive := make(map[Position]bool, len(vc))
	for _, v := range vc {
		alive[Position{v[0], v[1]}] = true
	}
	return func(x int, y int) Cell {
		return Cell(alive[Position{x, y}])
	}
}

//neighbourOffsets lists the 8 relative positions around a cell
var neighbourOffsets = [8]Position{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func mustBePositive(width int, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("universe: dimension must be positive, got %v x %v", width, height))
	}
}

func mustBeInside(width int, height int, x int, y int) {
	if x < 0 || y < 0 || x >= width || y >= height {
		panic(fmt.Sprintf("universe: cell %v,%v is outside the %v x %v area", x, y, width, height))
	}
}
