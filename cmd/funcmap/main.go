package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/reusee/dscope"
	"github.com/reusee/funcmap/cmds"
	"github.com/reusee/funcmap/configs"
	"github.com/reusee/funcmap/funcmaps"
	"github.com/reusee/funcmap/literals"
	"github.com/reusee/funcmap/logs"
	"github.com/reusee/funcmap/modes"
	"github.com/reusee/funcmap/values"
	"github.com/reusee/funcmap/vars"
)

type call struct {
	name string
	args string
}

var (
	configFiles = cmds.Collect[string]("-config", "load a cue config file")
	list        = cmds.Switch("-list", "print bound names")
	calls       []call
)

func init() {
	cmds.Define("-call", cmds.Func(func(name string, args string) {
		calls = append(calls, call{
			name: name,
			args: args,
		})
	}).Desc(`call a function with arguments in starlark syntax, like -call add_str '"Hello", "World"'`))
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	).Fork(
		dscope.Provide(configs.NewLoader(*configFiles, configs.Schema)),
	)

	var err error
	scope.Call(func(
		mode modes.Mode,
		loader configs.Loader,
		logger logs.Logger,
		newSpan logs.NewSpan,
		m *funcmaps.FuncMap,
	) {
		err = run(mode, loader, logger, newSpan, m, os.Stdout)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
	newSpan logs.NewSpan,
	m *funcmaps.FuncMap,
	out io.Writer,
) error {
	if err := loader.Err(); err != nil {
		return err
	}

	level, err := logs.ParseLevel(vars.FirstNonZero(
		configs.LogLevel(loader),
		mode.LogLevel().String(),
	))
	if err != nil {
		return err
	}
	logs.SetDefaultLevel(level)

	if err := bindDemo(m, out); err != nil {
		return err
	}
	if err := m.AliasAll(configs.Aliases(loader)); err != nil {
		return err
	}

	if *list {
		for _, name := range m.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	ctx := context.Background()

	if len(calls) == 0 {
		// default demo
		ret, err := m.Call(ctx, "add_str", values.Of("Hello"), values.Of("World"))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, values.MustAs[string](ret))
		if _, err := m.Call(ctx, "print_sum", values.Of(1), values.Of(2)); err != nil {
			return err
		}
		return nil
	}

	quote := isTerminal(out)
	for _, c := range calls {
		ctx, _ := newSpan(ctx, "")
		args, err := literals.ParseArgs(c.args)
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "call", "name", c.name, "args", len(args))
		ret, err := m.Call(ctx, c.name, args...)
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if ret.IsNone() {
			continue
		}
		if !quote {
			fmt.Fprintln(out, ret)
			continue
		}
		str, err := literals.Format(ret)
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		fmt.Fprintln(out, str)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
