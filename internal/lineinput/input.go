// Package lineinput provides sequential line reading through a queue of
// one or more input streams, tracking source name and line number to
// facilitate user feedback.
package lineinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Reader reads whole lines from a Queue of one or more input streams.
// Exhausted streams are closed (when closable) before rolling over to the
// next queued stream.
type Reader struct {
	br    *bufio.Reader
	cur   io.Reader
	Queue []io.Reader
	Loc   Location
}

// ReadLine reads and returns one logical line, without its trailing line
// terminator, advancing Loc. A final unterminated line is returned with a
// nil error; the next call then reports io.EOF. When the current stream
// ends the next queued stream is opened transparently.
func (in *Reader) ReadLine() (string, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", io.EOF
		}

		line, err := in.br.ReadString('\n')
		if err == nil || line != "" {
			in.Loc.Line++
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err != io.EOF {
			return "", err
		}
		in.closeCur()
	}
}

// Close closes any remaining streams, current and queued.
func (in *Reader) Close() (err error) {
	err = in.closeCur()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Reader) closeCur() (err error) {
	if in.cur != nil {
		if cl, ok := in.cur.(io.Closer); ok {
			err = cl.Close()
		}
		in.cur = nil
	}
	in.br = nil
	return err
}

func (in *Reader) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.br = bufio.NewReader(r)
	in.Loc.Name = nameOf(r)
	in.Loc.Line = 0
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
