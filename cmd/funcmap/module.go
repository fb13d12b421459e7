package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/funcmap/configs"
	"github.com/reusee/funcmap/funcmaps"
)

type Module struct {
	dscope.Module
	FuncMaps funcmaps.Module
	Configs  configs.Module
}
