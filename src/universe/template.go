package universe

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

//Templates holds the built-in patterns, placed near the top-left corner
var Templates = map[string]Template{
	"blinker": {
		"blinker",
		"period 2 oscillator",
		[][]int{{1, 2}, {2, 2}, {3, 2}},
	},
	"block": {
		"block",
		"2x2 still life",
		[][]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
	},
	"glider": {
		"glider",
		"travels down and right until it reaches the border",
		[][]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}},
	},
	"testSample1": {
		"testSample1",
		"the test sample with 3 stable patterns",
		[][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}},
	},
}

//Seeder returns the seeder that settles the template coordinates shifted by dx, dy
func (t Template) Seeder(dx int, dy int) Seeder {
	vc := make([][]int, 0, len(t.Coordinates))
	for _, v := range t.Coordinates {
		vc = append(vc, []int{v[0] + dx, v[1] + dy})
	}
	return CoordinatesSeeder(vc)
}
