package logs

import (
	"io"
	"os"
)

// Writer receives the text output of Logger.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
