package logs

import (
	"log/slog"

	"github.com/lumelang/lume/values"
)

// Value renders a runtime value as a log attribute, using its literal-like
// form.
func Value(key string, v values.Value) slog.Attr {
	return slog.String(key, v.Repr())
}
