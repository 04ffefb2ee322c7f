package universe

/*
	Dense storage strategy
	every cell lives in one contiguous row-major buffer, the rows are slices of it.
	Next allocates the new buffer with full size and calculates all cell states into it,
	the receiver is never touched
*/

//cellArea is the row-major cell buffer, every row is a slice of one backing array
type cellArea struct {
	Width    int
	Height   int
	Entities [][]Cell
}

type DenseGeneration struct {
	area      cellArea
	liveCells int
}

//NewDenseGeneration creates the dense generation, the seeder is called once per cell row by row
func NewDenseGeneration(width int, height int, seed Seeder) *DenseGeneration {
	mustBePositive(width, height)
	if seed == nil {
		seed = DeadSeeder
	}
	g := &DenseGeneration{area: createArea(width, height)}
	g.walkArea(func(x int, y int, _ Cell) {
		if seed(x, y) {
			g.area.Entities[y][x] = Alive
			g.liveCells++
		}
	})
	return g
}

func (g *DenseGeneration) Width() int {
	return g.area.Width
}

func (g *DenseGeneration) Height() int {
	return g.area.Height
}

func (g *DenseGeneration) LiveCells() int {
	return g.liveCells
}

func (g *DenseGeneration) Cell(x int, y int) Cell {
	mustBeInside(g.area.Width, g.area.Height, x, y)
	return g.area.Entities[y][x]
}

//Neighbors calculates the live neighbours, coordinates outside the area are skipped
func (g *DenseGeneration) Neighbors(x int, y int) int {
	liveNeighbours := 0
	area := g.area
	for _, d := range neighbourOffsets {
		nx := x + d.X
		ny := y + d.Y
		if nx < 0 || ny < 0 || nx >= area.Width || ny >= area.Height {
			continue
		}
		if area.Entities[ny][nx] {
			liveNeighbours++
		}
	}
	return liveNeighbours
}

//Next walks the area and calculates the next state for each cell into a new buffer
func (g *DenseGeneration) Next() Generation {
	next := &DenseGeneration{area: createArea(g.area.Width, g.area.Height)}
	g.walkArea(func(x int, y int, e Cell) {
		nextState := NextState(e, g.Neighbors(x, y))
		next.area.Entities[y][x] = nextState
		if nextState {
			next.liveCells++
		}
	})
	return next
}

//walkArea walk the entire area and calls the cb function for each cell
func (g *DenseGeneration) walkArea(cb func(x int, y int, entity Cell)) {
	for y := range g.area.Entities {
		for x := range g.area.Entities[y] {
			cb(x, y, g.area.Entities[y][x])
		}
	}
}

//createArea allocate the new area and return it
func createArea(width int, height int) cellArea {
	area := cellArea{Width: width, Height: height, Entities: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}
