package values

import "iter"

// Walk yields v and every value transitively reachable through Children,
// each once. The visited set makes traversal of cyclic structures
// terminate; atomic kinds deduplicate by equality, which is harmless since
// they own nothing.
func Walk(v Value) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		visited := make(map[Value]bool)
		var walk func(v Value) bool
		walk = func(v Value) bool {
			if visited[v] {
				return true
			}
			visited[v] = true
			if !yield(v) {
				return false
			}
			for child := range v.Children() {
				if !walk(child) {
					return false
				}
			}
			return true
		}
		walk(v)
	}
}
