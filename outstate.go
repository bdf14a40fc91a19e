package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/gofourth/internal/flushio"
)

// Diagnostic tags. Each diagnostic line begins with its bracketed tag,
// rendered ANSI red on color terminals.
const (
	tagSyntax     = "SYNTAX"
	tagBadDef     = "BAD DEF"
	tagBadWord    = "BAD WORD"
	tagBadLoop    = "BAD LOOP"
	tagBadAddress = "BAD ADDRESS"
	tagUnderflow  = "STACK UNDERFLOW"
	tagBadLoad    = "BAD LOAD"
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// outState owns both output channels and the line discipline around them.
// Words that print without a trailing newline leave pendingNewline set, so
// that end of line, DUMP, and diagnostics know a newline is owed;
// pendingSpace separates consecutive printed values.
type outState struct {
	out   flushio.WriteFlusher
	diag  flushio.WriteFlusher
	color bool

	pendingNewline bool
	pendingSpace   bool
}

// printValue prints one value for `.` and EMIT: space-separated from a
// preceding value, no trailing newline.
func (o *outState) printValue(s string) {
	if o.pendingSpace {
		io.WriteString(o.out, " ")
	}
	io.WriteString(o.out, s)
	o.pendingSpace = true
	o.pendingNewline = true
}

// printText prints string literal content verbatim.
func (o *outState) printText(s string) {
	io.WriteString(o.out, s)
	o.pendingSpace = false
	o.pendingNewline = true
}

func (o *outState) cr() {
	io.WriteString(o.out, "\n")
	o.pendingNewline = false
	o.pendingSpace = false
}

// dump prints the whole stack bottom-to-top on a line of its own.
func (o *outState) dump(vals []int) {
	if o.pendingNewline {
		io.WriteString(o.out, "\n")
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString("]\n")
	io.WriteString(o.out, sb.String())
	o.pendingNewline = false
	o.pendingSpace = false
}

// echoLine echoes a line read from a non-interactive source.
func (o *outState) echoLine(line string) {
	if o.pendingNewline {
		io.WriteString(o.out, "\n")
		o.pendingNewline = false
	}
	fmt.Fprintf(o.out, "> %s\n", line)
	o.flush()
}

// finishLine terminates any un-newlined output once a whole input line has
// been interpreted.
func (o *outState) finishLine() {
	if o.pendingNewline {
		io.WriteString(o.out, "\n")
	}
	o.pendingNewline = false
	o.pendingSpace = false
	o.flush()
}

// errf emits one diagnostic. Pending output is flushed first and the
// message gets a leading newline when needed so it never runs on the same
// line as ordinary output.
func (o *outState) errf(tag, mess string, args ...interface{}) {
	o.flush()
	var sb strings.Builder
	if o.pendingNewline {
		sb.WriteByte('\n')
		o.pendingNewline = false
	}
	sb.WriteString(diagMessage(o.color, tag, fmt.Sprintf(mess, args...)))
	sb.WriteByte('\n')
	io.WriteString(o.diag, sb.String())
	o.diag.Flush()
}

func (o *outState) flush() {
	if o.out != nil {
		o.out.Flush()
	}
}

// diagMessage formats a tagged diagnostic line, red-tagged when colored.
func diagMessage(color bool, tag, mess string) string {
	if color {
		return colorRed + "[" + tag + "]" + colorReset + " " + mess
	}
	return "[" + tag + "] " + mess
}
