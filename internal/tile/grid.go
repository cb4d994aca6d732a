package tile

// Position identifies one cell of a Grid.
//
// The grid is indexed step, layer, row, column, but adjacency queries
// historically mixed up the axis order when unpacking bare tuples. The
// named fields make the convention explicit: X is the column and Y is
// the row.
type Position struct {
	Step  int `json:"step"`
	Layer int `json:"layer"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

// Right, Up, Left and Down return the neighboring position in the same
// step and layer; diagonal neighbors compose them.
func (p Position) Right() Position { p.X++; return p }
func (p Position) Up() Position    { p.Y--; return p }
func (p Position) Left() Position  { p.X--; return p }
func (p Position) Down() Position  { p.Y++; return p }

// Stack is the ordered pile of tiles occupying a single cell, bottom
// first. Multiple tiles share a cell when objects overlap visually.
type Stack []Raw

// Grid is the full 4-dimensional scene: step, layer, row, column, with
// each cell holding a Stack.
type Grid [][][][]Stack

// Stack returns the stack at p, reporting false when p lies outside the
// grid. Out-of-bounds lookups are a normal part of adjacency queries at
// the grid edge.
func (g Grid) Stack(p Position) (Stack, bool) {
	if p.Step < 0 || p.Step >= len(g) {
		return nil, false
	}
	step := g[p.Step]
	if p.Layer < 0 || p.Layer >= len(step) {
		return nil, false
	}
	layer := step[p.Layer]
	if p.Y < 0 || p.Y >= len(layer) {
		return nil, false
	}
	row := layer[p.Y]
	if p.X < 0 || p.X >= len(row) {
		return nil, false
	}
	return row[p.X], true
}

// Names collects the set of distinct tile names appearing anywhere in
// the grid. Used to batch the static metadata fetch.
func (g Grid) Names() []string {
	seen := map[string]bool{}
	var names []string
	for _, step := range g {
		for _, layer := range step {
			for _, row := range layer {
				for _, stack := range row {
					for _, t := range stack {
						if !seen[t.Name] {
							seen[t.Name] = true
							names = append(names, t.Name)
						}
					}
				}
			}
		}
	}
	return names
}

// FullGrid mirrors the shape of a Grid with one resolved descriptor per
// tile per cell.
type FullGrid [][][][][]Full
