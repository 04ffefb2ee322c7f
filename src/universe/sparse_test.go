package universe

import (
	"strings"
	"testing"
)

func allAlive(int, int) Cell {
	return Alive
}

func TestInsetSparseSkipsOuterRing(t *testing.T) {
	g := NewInsetSparseGeneration(5, 4, allAlive)
	if got, want := g.Positions(), 4*3; got != want {
		t.Fatalf("Positions() = %d, expected %d", got, want)
	}
	if got := g.LiveCells(); got != 12 {
		t.Fatalf("LiveCells() = %d, expected 12", got)
	}
	want := "     \n OOOO\n OOOO\n OOOO\n"
	if got := Display(g); got != want {
		t.Fatalf("board rendered as %q, expected %q", got, want)
	}

	var next Generation = g
	for i := 0; i < 5; i++ {
		next = next.Next()
		for x := 0; x < 5; x++ {
			if next.Cell(x, 0) {
				t.Fatalf("generation %d: ring cell (%d,0) is alive", i+1, x)
			}
		}
		for y := 0; y < 4; y++ {
			if next.Cell(0, y) {
				t.Fatalf("generation %d: ring cell (0,%d) is alive", i+1, y)
			}
		}
	}
}

func TestInsetSparseDomainStopsGrowth(t *testing.T) {
	line := [][]int{{1, 1}, {2, 1}, {3, 1}}

	full := NewSparseGeneration(6, 6, CoordinatesSeeder(line)).Next()
	expectAlive(t, full, [][]int{{2, 0}, {2, 1}, {2, 2}})

	//(2,0) is outside the inset domain, the blinker loses its top cell
	inset := NewInsetSparseGeneration(6, 6, CoordinatesSeeder(line)).Next()
	expectAlive(t, inset, [][]int{{2, 1}, {2, 2}})
}

func TestInsetSparseIgnoresSeedOutsideDomain(t *testing.T) {
	g := NewInsetSparseGeneration(4, 4, CoordinatesSeeder([][]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}}))
	expectAlive(t, g, [][]int{{2, 2}})
	if n := g.Neighbors(1, 1); n != 1 {
		t.Fatalf("Neighbors(1,1) = %d, expected 1", n)
	}
}

func TestSparseFullDomainMatchesDense(t *testing.T) {
	var dense Generation = NewDenseGeneration(40, 15, RandomSeeder(NewRandomSource(99), DefDensity))
	var sparse Generation = NewSparseGeneration(40, 15, func(x int, y int) Cell { return dense.Cell(x, y) })
	for i := 0; i < 30; i++ {
		if !Equal(dense, sparse) {
			t.Fatalf("generation %d differs:\n%s\n%s", i, Display(dense), strings.TrimRight(Display(sparse), "\n"))
		}
		dense, sparse = dense.Next(), sparse.Next()
	}
}

func TestInsetSparseFollowsRuleInsideDomain(t *testing.T) {
	const w, h = 12, 9
	g := NewInsetSparseGeneration(w, h, RandomSeeder(NewRandomSource(5), 0.4))
	next := g.Next()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 {
				if next.Cell(x, y) {
					t.Fatalf("cell (%d,%d) outside the domain is alive", x, y)
				}
				continue
			}
			//count only the neighbours inside 1..w-1 x 1..h-1
			n := 0
			for _, d := range neighbourOffsets {
				nx, ny := x+d.X, y+d.Y
				if nx < 1 || ny < 1 || nx >= w || ny >= h {
					continue
				}
				if g.Cell(nx, ny) {
					n++
				}
			}
			if got := g.Neighbors(x, y); got != n {
				t.Fatalf("Neighbors(%d,%d) = %d, expected %d", x, y, got, n)
			}
			if got, want := next.Cell(x, y), NextState(g.Cell(x, y), n); got != want {
				t.Fatalf("cell (%d,%d) with %d neighbours is %v, expected %v", x, y, n, bool(got), bool(want))
			}
		}
	}
}

func TestInsetSparseBoundaryDoesNotWrap(t *testing.T) {
	g := NewInsetSparseGeneration(5, 4, CoordinatesSeeder([][]int{{1, 1}}))
	touched := map[Position]bool{{2, 1}: true, {1, 2}: true, {2, 2}: true}
	for y := 1; y < 4; y++ {
		for x := 1; x < 5; x++ {
			want := 0
			if touched[Position{x, y}] {
				want = 1
			}
			if got := g.Neighbors(x, y); got != want {
				t.Errorf("Neighbors(%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
	}
}
