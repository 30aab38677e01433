package pkg

import (
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/ansel1/merry"
	"github.com/powerman/structlog"
)

// Frame is one call of a captured stack with the file name shortened to its
// import path.
type Frame struct {
	File string
	Line int
	Func string
}

func (x Frame) String() string {
	return fmt.Sprintf("%s:%d %s", x.File, x.Line, x.Func)
}

// Frames resolves program counters skipping runtime.goexit.
func Frames(stack []uintptr) []Frame {
	var xs []Frame
	for _, pc := range stack {
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		name := filepath.Base(fn.Name())
		if name == "runtime.goexit" {
			continue
		}
		file, line := fn.FileLine(pc)
		xs = append(xs, Frame{File: trimFileName(file), Line: line, Func: name})
	}
	return xs
}

// FormatStacktrace formats the stack of the caller, skip frames above it omitted.
func FormatStacktrace(skip int, sep string) string {
	const maxDepth = 100
	stack := make([]uintptr, maxDepth)
	n := runtime.Callers(2+skip, stack)
	return joinFrames(Frames(stack[:n]), sep)
}

// FormatMerryStacktrace formats the stack captured by merry, empty if e has none.
func FormatMerryStacktrace(e error, sep string) string {
	return joinFrames(Frames(merry.Stack(e)), sep)
}

// PrintMerryStacktrace logs the stack of e at debug level, one frame per line.
func PrintMerryStacktrace(log *structlog.Logger, e error) {
	for i, x := range Frames(merry.Stack(e)) {
		indent := " "
		if i > 0 {
			indent = "\t"
		}
		log.Debug(indent + x.String())
	}
}

func joinFrames(xs []Frame, sep string) string {
	ss := make([]string, len(xs))
	for i, x := range xs {
		ss[i] = x.String()
	}
	return strings.Join(ss, sep)
}

func trimFileName(file string) string {
	file = strings.ReplaceAll(file, "\\", "/")
	for _, re := range trimFileNameRegexps {
		file = re.ReplaceAllString(file, "")
	}
	return file
}

var trimFileNameRegexps = []*regexp.Regexp{
	regexp.MustCompile(`^.*/src/`),
	regexp.MustCompile(`^.*/pkg/mod/`),
	regexp.MustCompile(`github.com/fpawel/`),
	regexp.MustCompile(`@v[^/]+`),
}
