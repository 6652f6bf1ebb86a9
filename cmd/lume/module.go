package main

import (
	"github.com/lumelang/lume/debugs"
	"github.com/lumelang/lume/lumeconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Debugs  debugs.Module
	Configs lumeconfigs.Module
}
