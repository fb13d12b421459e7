package logs

import (
	"log/slog"
	"strings"

	"github.com/reusee/funcmap/cmds"
)

var (
	level = new(slog.LevelVar)
	// set by command line
	levelFixed bool
)

func init() {
	for _, l := range []slog.Level{
		slog.LevelDebug,
		slog.LevelInfo,
		slog.LevelWarn,
		slog.LevelError,
	} {
		name := strings.ToLower(l.String())
		cmds.Define("-log-"+name, cmds.Func(func() {
			level.Set(l)
			levelFixed = true
		}).Desc("set log level to "+name))
	}
}

func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetDefaultLevel sets the level unless it was given on the command line.
func SetDefaultLevel(l slog.Level) {
	if levelFixed {
		return
	}
	level.Set(l)
}

func Level() slog.Level {
	return level.Level()
}

// ParseLevel accepts the names used by slog, case-insensitively.
func ParseLevel(str string) (ret slog.Level, err error) {
	err = ret.UnmarshalText([]byte(str))
	return
}
