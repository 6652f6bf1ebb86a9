package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/lumelang/lume/logs"
	"github.com/lumelang/lume/syncs"
	"github.com/lumelang/lume/values"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark session over a snapshot of globals.
// Runtime values go through the value bridge; anything else through the
// reflective conversion. Only one tap runs at a time.
type Tap func(ctx context.Context, what string, globals map[string]any)

var tapSem = syncs.NewSemaphore(1)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		tapSem.Acquire()
		defer tapSem.Release()

		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			if rv, ok := value.(values.Value); ok {
				mappings[name] = toStarlark(rv)
			} else {
				mappings[name] = toStarlarkValue(value)
			}
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
