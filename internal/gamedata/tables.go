package gamedata

// Transition is one step of a piecewise-constant depth table: from Depth
// onward the table yields Value, until a later transition overrides it.
type Transition struct {
	Depth int `json:"depth"`
	Value int `json:"value"`
}

// ValueAt returns the value of the last transition whose depth is at or
// below the given depth, or 0 when none apply yet. Tables are authored in
// ascending depth order.
func ValueAt(table []Transition, depth int) int {
	value := 0
	for _, t := range table {
		if t.Depth > depth {
			break
		}
		value = t.Value
	}
	return value
}
