package lumeconfigs

import (
	"github.com/lumelang/lume/cmds"
	"github.com/lumelang/lume/configs"
)

// TraceCalls logs every native function call with its bound arguments.
type TraceCalls bool

var traceCallsFlag = cmds.Switch("-trace-calls")

func (Module) TraceCalls(
	loader configs.Loader,
) TraceCalls {
	if *traceCallsFlag {
		return true
	}
	return TraceCalls(configs.First[bool](loader, "trace_calls"))
}
