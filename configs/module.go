package configs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

func (Module) Loader() Loader {
	return NewLoader(nil, "")
}
