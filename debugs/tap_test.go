package debugs

import (
	"testing"

	"github.com/lumelang/lume/modes"
	"github.com/lumelang/lume/values"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
			"bar": values.NewList([]values.Value{values.Int(1)}),
		})
	})
}
