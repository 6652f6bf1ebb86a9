package values

import "strings"

// pathRenderer is implemented by container kinds so nested rendering can
// detect reference cycles through the in-progress path.
type pathRenderer interface {
	writeRepr(sb *strings.Builder, path []Value)
}

func writeValue(sb *strings.Builder, v Value, path []Value) {
	for _, p := range path {
		if p == v {
			switch v.(type) {
			case *List:
				sb.WriteString("[...]")
			case *Dict:
				sb.WriteString("{...}")
			default:
				sb.WriteString("...")
			}
			return
		}
	}
	if r, ok := v.(pathRenderer); ok {
		r.writeRepr(sb, append(path, v))
		return
	}
	sb.WriteString(v.Repr())
}
