package configs

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test2.cue", "test.cue"}, Schema)

	str := First[string](loader, "log_level")
	if str != "info" {
		t.Fatalf("got %v", str)
	}

	if str := First[string](loader, "foo"); str != "" {
		t.Fatalf("got %v", str)
	}
}

func TestAliases(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, Schema)
	aliases := Aliases(loader)
	if len(aliases) != 3 {
		t.Fatalf("got %v", aliases)
	}
	if aliases["concat"] != "add_str" {
		t.Fatalf("got %v", aliases)
	}
	if aliases["join"] != "add_str" {
		t.Fatalf("got %v", aliases)
	}
	if LogLevel(loader) != "debug" {
		t.Fatalf("got %v", LogLevel(loader))
	}
}

func TestModule(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		loader Loader,
	) {
		if len(Aliases(loader)) != 0 {
			t.Fatal()
		}
		if LogLevel(loader) != "" {
			t.Fatal()
		}
	})
}
