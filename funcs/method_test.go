package funcs

import (
	"errors"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/reusee/funcmap/values"
)

type summer struct {
	out   *strings.Builder
	total int
}

func (s *summer) PrintSum(x, y int) {
	s.total += x + y
	s.out.WriteString(strings.Repeat("+", x+y))
}

func (s summer) Total() int {
	return s.total
}

func TestMethod(t *testing.T) {
	direct := &summer{out: new(strings.Builder)}
	direct.PrintSum(1, 2)

	s := &summer{out: new(strings.Builder)}
	m, err := NewMethod((*summer).PrintSum, s)
	if err != nil {
		t.Fatal(err)
	}
	if m.Arity() != 2 {
		t.Fatalf("got %d", m.Arity())
	}
	ret, err := m.Call(values.Of(1), values.Of(2))
	if err != nil {
		t.Fatal(err)
	}
	if !ret.IsNone() {
		t.Fatalf("got %v", ret)
	}
	if s.total != direct.total {
		t.Fatalf("got %d", s.total)
	}
	if s.out.String() != direct.out.String() {
		t.Fatalf("got %q", s.out.String())
	}

	if m.Type() != reflect.TypeFor[func(int, int)]() {
		t.Fatalf("got %v", m.Type())
	}
}

func TestMethodValueReceiver(t *testing.T) {
	m, err := NewMethod(summer.Total, summer{total: 3})
	if err != nil {
		t.Fatal(err)
	}
	ret, err := m.Call()
	if err != nil {
		t.Fatal(err)
	}
	if values.MustAs[int](ret) != 3 {
		t.Fatalf("got %v", ret)
	}
}

func TestMethodErrors(t *testing.T) {
	s := &summer{out: new(strings.Builder)}
	m, err := NewMethod((*summer).PrintSum, s)
	if err != nil {
		t.Fatal(err)
	}

	_, err = m.Call(values.Of(1))
	if !errors.Is(err, ErrArityMismatch) {
		t.Fatalf("got %v", err)
	}

	_, err = m.Call(values.Of(1), values.Of(int64(2)))
	var argErr *ArgumentError
	if !errors.As(err, &argErr) || argErr.Index != 1 {
		t.Fatalf("got %v", err)
	}
	if !errors.Is(err, values.ErrTypeMismatch) {
		t.Fatalf("got %v", err)
	}
	if s.total != 0 {
		t.Fatal("should not be called")
	}

	if _, err := NewMethod((*summer).PrintSum, summer{}); !errors.Is(err, ErrInvalidReceiver) {
		t.Fatalf("got %v", err)
	}
	if _, err := NewMethod((*summer).PrintSum, (*summer)(nil)); !errors.Is(err, ErrInvalidReceiver) {
		t.Fatalf("got %v", err)
	}
	if _, err := NewMethod((*summer).PrintSum, nil); !errors.Is(err, ErrInvalidReceiver) {
		t.Fatalf("got %v", err)
	}
	if _, err := NewMethod(func() {}, s); !errors.Is(err, ErrUnsupportedSignature) {
		t.Fatalf("got %v", err)
	}
}

func TestMethodOf(t *testing.T) {
	s := &summer{out: new(strings.Builder)}
	m, err := MethodOf(s, "PrintSum")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Call(values.Of(2), values.Of(3)); err != nil {
		t.Fatal(err)
	}
	if s.total != 5 {
		t.Fatalf("got %d", s.total)
	}

	if _, err := MethodOf(s, "Foo"); !errors.Is(err, ErrInvalidReceiver) {
		t.Fatalf("got %v", err)
	}
	if _, err := MethodOf(nil, "Foo"); !errors.Is(err, ErrInvalidReceiver) {
		t.Fatalf("got %v", err)
	}
}

type node struct {
	next  *node
	total int
}

func (n *node) Add(i int) int {
	n.total += i
	return n.total
}

func newWeakAdd(t *testing.T) *WeakMethod[node] {
	m, err := NewWeakMethod((*node).Add, new(node))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestWeakMethod(t *testing.T) {
	n := new(node)
	m, err := NewWeakMethod((*node).Add, n)
	if err != nil {
		t.Fatal(err)
	}
	ret, err := m.Call(values.Of(3))
	if err != nil {
		t.Fatal(err)
	}
	if values.MustAs[int](ret) != 3 {
		t.Fatalf("got %v", ret)
	}
	if n.total != 3 {
		t.Fatalf("got %d", n.total)
	}
	runtime.KeepAlive(n)

	gone := newWeakAdd(t)
	runtime.GC()
	_, err = gone.Call(values.Of(1))
	if !errors.Is(err, ErrReceiverGone) {
		t.Fatalf("got %v", err)
	}
}

func TestWeakMethodErrors(t *testing.T) {
	if _, err := NewWeakMethod[node]((*node).Add, nil); !errors.Is(err, ErrInvalidReceiver) {
		t.Fatalf("got %v", err)
	}
	if _, err := NewWeakMethod((*summer).PrintSum, new(node)); !errors.Is(err, ErrInvalidReceiver) {
		t.Fatalf("got %v", err)
	}
	if _, err := NewWeakMethod(42, new(node)); !errors.Is(err, ErrUnsupportedSignature) {
		t.Fatalf("got %v", err)
	}
}
