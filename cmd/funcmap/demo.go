package main

import (
	"fmt"
	"io"

	"github.com/reusee/funcmap/funcmaps"
)

func addStr(a, b string) string {
	return a + " " + b
}

type Adder struct {
	out io.Writer
}

func (a *Adder) PrintSum(x, y int) {
	fmt.Fprintln(a.out, x+y)
}

func bindDemo(m *funcmaps.FuncMap, out io.Writer) error {
	if err := m.Bind("add_str", addStr); err != nil {
		return err
	}
	if err := m.BindMethod("print_sum", (*Adder).PrintSum, &Adder{out: out}); err != nil {
		return err
	}
	return nil
}
