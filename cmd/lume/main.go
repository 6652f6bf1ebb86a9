package main

import (
	"context"
	"os"

	"github.com/lumelang/lume/cmds"
	"github.com/lumelang/lume/debugs"
	"github.com/lumelang/lume/funcs"
	"github.com/lumelang/lume/logs"
	"github.com/lumelang/lume/lumeconfigs"
	"github.com/lumelang/lume/modes"
	"github.com/lumelang/lume/values"
	"github.com/reusee/dscope"
)

func main() {
	cmds.MustExecute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		tap debugs.Tap,
		traceCalls lumeconfigs.TraceCalls,
		historyFile lumeconfigs.HistoryFile,
	) {

		ctx, _ := newSpan(ctx, "")

		logger.InfoContext(ctx, "start",
			"history", string(historyFile),
		)

		globals := make(map[string]any)
		for _, fn := range builtins() {
			var callable funcs.Callable = fn
			if traceCalls {
				callable = &traced{
					Callable: fn,
					logger:   logger,
				}
			}
			globals[fn.Name()] = callable
		}
		globals["version"] = Version

		tap(ctx, "lume", globals)

	})

}

const Version = "0.1.0"

// traced wraps a callable and logs each invocation with its arguments.
type traced struct {
	funcs.Callable
	logger logs.Logger
}

func (t *traced) Call(positional []values.Value, named *values.Dict, args, kwargs values.Value) (values.Value, error) {
	attrs := []any{
		logs.Value("positional", values.NewList(positional)),
	}
	if named != nil {
		attrs = append(attrs, logs.Value("named", named))
	}
	t.logger.Info("call "+t.Name(), attrs...)
	ret, err := t.Callable.Call(positional, named, args, kwargs)
	if err != nil {
		t.logger.Info("call failed",
			"name", t.Name(),
			"error", err,
		)
		return nil, err
	}
	t.logger.Info("call returned",
		"name", t.Name(),
		logs.Value("value", ret),
	)
	return ret, nil
}

func builtins() []*funcs.Native {
	return []*funcs.Native{

		funcs.NewNative("add",
			funcs.NewSignature().
				Normal("a").
				Normal("b").
				Build(),
			func(c *funcs.Cursor) (values.Value, error) {
				a, err := c.Next()
				if err != nil {
					return nil, err
				}
				x, err := a.Int()
				if err != nil {
					return nil, err
				}
				b, err := c.Next()
				if err != nil {
					return nil, err
				}
				y, err := b.Int()
				if err != nil {
					return nil, err
				}
				if err := c.Done(); err != nil {
					return nil, err
				}
				return values.Int(x + y), nil
			},
		),

		funcs.NewNative("greet",
			funcs.NewSignature().
				Normal("name").
				Default("greeting", values.String("hello")).
				Build(),
			func(c *funcs.Cursor) (values.Value, error) {
				name, err := c.Next()
				if err != nil {
					return nil, err
				}
				who, err := name.String()
				if err != nil {
					return nil, err
				}
				greeting, err := c.Next()
				if err != nil {
					return nil, err
				}
				how, err := greeting.String()
				if err != nil {
					return nil, err
				}
				if err := c.Done(); err != nil {
					return nil, err
				}
				return values.String(how + ", " + who), nil
			},
		),

		funcs.NewNative("sum",
			funcs.NewSignature().
				Args("args").
				Build(),
			func(c *funcs.Cursor) (values.Value, error) {
				rest, err := c.Next()
				if err != nil {
					return nil, err
				}
				list, err := rest.List()
				if err != nil {
					return nil, err
				}
				if err := c.Done(); err != nil {
					return nil, err
				}
				var total int64
				for elem := range list.Iterate() {
					n, err := values.ToInt(elem)
					if err != nil {
						return nil, err
					}
					total += n
				}
				return values.Int(total), nil
			},
		),

		funcs.NewNative("record",
			funcs.NewSignature().
				KWArgs("kwargs").
				Build(),
			func(c *funcs.Cursor) (values.Value, error) {
				rest, err := c.Next()
				if err != nil {
					return nil, err
				}
				dict, err := rest.Dict()
				if err != nil {
					return nil, err
				}
				if err := c.Done(); err != nil {
					return nil, err
				}
				return dict, nil
			},
		),
	}
}
