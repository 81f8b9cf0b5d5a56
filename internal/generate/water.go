package generate

import "math/rand"

// kernel weights the 5×5 neighbourhood: the inner 3×3 counts double.
var kernel = [5][5]int{
	{1, 1, 1, 1, 1},
	{1, 2, 2, 2, 1},
	{1, 2, 2, 2, 1},
	{1, 2, 2, 2, 1},
	{1, 1, 1, 1, 1},
}

// noise returns a [y][x] field where each cell is wall-ish with probability
// percent/100.
func noise(width, height, percent int, rng *rand.Rand) [][]bool {
	field := make([][]bool, height)
	for y := range field {
		field[y] = make([]bool, width)
		for x := range field[y] {
			field[y][x] = rng.Intn(100) < percent
		}
	}
	return field
}

// weighted sums the kernel over the wall-ish cells around (x, y). Cells off
// the grid count as wall-ish.
func weighted(field [][]bool, x, y int) int {
	sum := 0
	for ky := range 5 {
		for kx := range 5 {
			nx, ny := x+kx-2, y+ky-2
			if ny < 0 || ny >= len(field) || nx < 0 || nx >= len(field[ny]) || field[ny][nx] {
				sum += kernel[ky][kx]
			}
		}
	}
	return sum
}

// flood runs the automaton and returns the cells that become water: those
// whose weighted wall-ish count is below rule. Each extra pass feeds the
// previous result back in, with water as open space.
func flood(field [][]bool, rule, passes int) [][]bool {
	var water [][]bool
	for range passes {
		water = make([][]bool, len(field))
		next := make([][]bool, len(field))
		for y := range field {
			water[y] = make([]bool, len(field[y]))
			next[y] = make([]bool, len(field[y]))
			for x := range field[y] {
				water[y][x] = weighted(field, x, y) < rule
				next[y][x] = !water[y][x]
			}
		}
		field = next
	}
	return water
}
