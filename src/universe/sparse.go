package universe

/*
	Sparse storage strategy
	every cell of the domain is stored as a Position -> Cell entry.
	The domain is either the whole width x height box or, for the inset variant,
	1..width-1 x 1..height-1: the outer top row and left column are never simulated
	and always read as dead.
	Neighbours are looked up in the map, positions outside the domain are absent and never count.
*/

type SparseGeneration struct {
	width     int
	height    int
	origin    Position //top-left corner of the simulated domain
	cells     map[Position]Cell
	liveCells int
}

//NewSparseGeneration creates the sparse generation over the full width x height domain
func NewSparseGeneration(width int, height int, seed Seeder) *SparseGeneration {
	return newSparseGeneration(width, height, Position{0, 0}, seed)
}

//NewInsetSparseGeneration creates the sparse generation over the 1..width-1 x 1..height-1 domain
func NewInsetSparseGeneration(width int, height int, seed Seeder) *SparseGeneration {
	return newSparseGeneration(width, height, Position{1, 1}, seed)
}

func newSparseGeneration(width int, height int, origin Position, seed Seeder) *SparseGeneration {
	mustBePositive(width, height)
	if seed == nil {
		seed = DeadSeeder
	}
	g := &SparseGeneration{width: width, height: height, origin: origin}
	g.cells = make(map[Position]Cell, g.domainSize())
	//column by column, the order the seeder sees the cells in
	for x := origin.X; x < width; x++ {
		for y := origin.Y; y < height; y++ {
			state := seed(x, y)
			g.cells[Position{x, y}] = state
			if state {
				g.liveCells++
			}
		}
	}
	return g
}

func (g *SparseGeneration) Width() int {
	return g.width
}

func (g *SparseGeneration) Height() int {
	return g.height
}

func (g *SparseGeneration) LiveCells() int {
	return g.liveCells
}

//Cell returns the cell state, positions of the box which are not simulated read as dead
func (g *SparseGeneration) Cell(x int, y int) Cell {
	mustBeInside(g.width, g.height, x, y)
	return g.cells[Position{x, y}]
}

func (g *SparseGeneration) Neighbors(x int, y int) int {
	liveNeighbours := 0
	for _, d := range neighbourOffsets {
		if g.cells[Position{x + d.X, y + d.Y}] {
			liveNeighbours++
		}
	}
	return liveNeighbours
}

//Next calculates the new state for every stored position into a new map
func (g *SparseGeneration) Next() Generation {
	next := &SparseGeneration{
		width:  g.width,
		height: g.height,
		origin: g.origin,
		cells:  make(map[Position]Cell, len(g.cells)),
	}
	for p, c := range g.cells {
		nextState := NextState(c, g.Neighbors(p.X, p.Y))
		next.cells[p] = nextState
		if nextState {
			next.liveCells++
		}
	}
	return next
}

//Positions returns the number of simulated positions
func (g *SparseGeneration) Positions() int {
	return len(g.cells)
}

func (g *SparseGeneration) domainSize() int {
	w := g.width - g.origin.X
	h := g.height - g.origin.Y
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}
