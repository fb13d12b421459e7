package funcmaps

import (
	"github.com/reusee/dscope"
	"github.com/reusee/funcmap/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

func (Module) FuncMap(
	logger logs.Logger,
) *FuncMap {
	return New(logger)
}
