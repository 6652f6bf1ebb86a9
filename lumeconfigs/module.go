package lumeconfigs

import (
	"github.com/lumelang/lume/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
