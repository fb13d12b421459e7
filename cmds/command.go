package cmds

import (
	"fmt"

	"github.com/reusee/funcmap/funcs"
)

type Command struct {
	Func        *funcs.Func
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func Func(fn any) *Command {
	f, err := funcs.NewFunc(fn)
	if err != nil {
		panic(err)
	}

	fnType := f.Type()
	numRets := fnType.NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		Func: f,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
