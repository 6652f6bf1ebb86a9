package funcs

import (
	"fmt"
	"strings"
)

// Repr renders a callable as its literal-like form, with optional
// parameters marked "?".
func Repr(c Callable) string { return c.Repr() }

// Str renders a callable as its display form; same parameter list, without
// the optional markers.
func Str(c Callable) string { return c.Str() }

func reprSignature(sig Signature) string {
	return renderSignature(sig, true)
}

func strSignature(sig Signature) string {
	return renderSignature(sig, false)
}

func renderSignature(sig Signature, markOptional bool) string {
	parts := make([]string, len(sig))
	for i, p := range sig {
		switch p.Kind {
		case ParamNormal:
			parts[i] = p.Name
		case ParamOptional:
			if markOptional {
				parts[i] = "?" + p.Name
			} else {
				parts[i] = p.Name
			}
		case ParamWithDefault:
			parts[i] = fmt.Sprintf("%s = %s", p.Name, p.Default.Repr())
		case ParamArgsArray:
			parts[i] = "*" + p.Name
		case ParamKWArgsDict:
			parts[i] = "**" + p.Name
		}
	}
	return strings.Join(parts, ", ")
}
