package logger

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
)

// Callsite writes one line to w tagged with the caller's source file name
// and line number, resolved at the call site:
//
//	info:<file>:<line> <message>
//
// An empty message is printed verbatim. Write errors follow the writer's
// own semantics and are not reported.
func Callsite(w io.Writer, message string) {
	CallsiteDepth(w, 2, message)
}

// CallsiteDepth is Callsite with an explicit stack depth, so wrapping
// helpers can attribute the line to their own caller. Depth 1 is the
// immediate caller of CallsiteDepth.
func CallsiteDepth(w io.Writer, depth int, message string) {
	file := "unknown"
	line := 0

	if _, f, l, ok := runtime.Caller(depth); ok {
		file = filepath.Base(f)
		line = l
	}

	fmt.Fprintf(w, "info:%s:%d %s\n", file, line, message)
}
