package funcmaps

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownName = errors.New("unknown name")

type UnknownNameError struct {
	Name string
}

func (u *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown name: %s", u.Name)
}

func (u *UnknownNameError) Is(target error) bool {
	return target == ErrUnknownName
}

var ErrAliasCycle = errors.New("alias cycle")

type AliasCycleError struct {
	Path []string
}

func (a *AliasCycleError) Error() string {
	return fmt.Sprintf("alias cycle: %s", strings.Join(a.Path, " -> "))
}

func (a *AliasCycleError) Is(target error) bool {
	return target == ErrAliasCycle
}
