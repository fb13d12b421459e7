// Package funcmaps maps names to type-erased callables.
//
// Binding a name that is already bound replaces the previous entry.
// Lookups never create entries. A Callable obtained from a lookup stays
// usable after its name is rebound or deleted.
package funcmaps

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/reusee/funcmap/funcs"
	"github.com/reusee/funcmap/logs"
	"github.com/reusee/funcmap/values"
)

type FuncMap struct {
	logger  logs.Logger
	mu      sync.RWMutex
	entries map[string]funcs.Callable
}

func New(logger logs.Logger) *FuncMap {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FuncMap{
		logger:  logger,
		entries: make(map[string]funcs.Callable),
	}
}

// Set stores c under name.
func (f *FuncMap) Set(name string, c funcs.Callable) {
	f.mu.Lock()
	_, replaced := f.entries[name]
	f.entries[name] = c
	f.mu.Unlock()
	f.logger.Debug("bind", "name", name, "replaced", replaced)
}

// Bind stores the function fn under name.
func (f *FuncMap) Bind(name string, fn any) error {
	c, err := funcs.NewFunc(fn)
	if err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	f.Set(name, c)
	return nil
}

// BindMethod stores the method expression method bound to receiver under name.
// The receiver is retained by the entry.
func (f *FuncMap) BindMethod(name string, method any, receiver any) error {
	c, err := funcs.NewMethod(method, receiver)
	if err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	f.Set(name, c)
	return nil
}

func (f *FuncMap) BindMethodByName(name string, receiver any, method string) error {
	c, err := funcs.MethodOf(receiver, method)
	if err != nil {
		return fmt.Errorf("bind %s: %w", name, err)
	}
	f.Set(name, c)
	return nil
}

// Alias stores the callable of target under alias too.
func (f *FuncMap) Alias(alias string, target string) error {
	c, err := f.Get(target)
	if err != nil {
		return fmt.Errorf("alias %s: %w", alias, err)
	}
	f.Set(alias, c)
	return nil
}

// AliasAll applies a set of aliases whose targets may name other aliases
// of the set. Targets are followed through the set until a name outside it,
// so the result does not depend on map order.
func (f *FuncMap) AliasAll(aliases map[string]string) error {
	for _, alias := range slices.Sorted(maps.Keys(aliases)) {
		target := aliases[alias]
		path := []string{alias}
		for {
			if slices.Contains(path, target) {
				return &AliasCycleError{
					Path: append(path, target),
				}
			}
			next, ok := aliases[target]
			if !ok {
				break
			}
			path = append(path, target)
			target = next
		}
		if err := f.Alias(alias, target); err != nil {
			return err
		}
	}
	return nil
}

func (f *FuncMap) Lookup(name string) (funcs.Callable, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.entries[name]
	return c, ok
}

func (f *FuncMap) Get(name string) (funcs.Callable, error) {
	c, ok := f.Lookup(name)
	if !ok {
		return nil, &UnknownNameError{
			Name: name,
		}
	}
	return c, nil
}

func (f *FuncMap) Call(ctx context.Context, name string, args ...values.Value) (values.Value, error) {
	c, err := f.Get(name)
	if err != nil {
		f.logger.DebugContext(ctx, "call", "name", name, "error", err)
		return values.Value{}, err
	}
	ret, err := c.Call(args...)
	if err != nil {
		f.logger.DebugContext(ctx, "call", "name", name, "error", err)
		return values.Value{}, fmt.Errorf("call %s: %w", name, err)
	}
	return ret, nil
}

func (f *FuncMap) Delete(name string) bool {
	f.mu.Lock()
	_, ok := f.entries[name]
	delete(f.entries, name)
	f.mu.Unlock()
	if ok {
		f.logger.Debug("unbind", "name", name)
	}
	return ok
}

func (f *FuncMap) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Sorted(maps.Keys(f.entries))
}

func (f *FuncMap) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}
