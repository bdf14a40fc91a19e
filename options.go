package main

import (
	"bytes"
	"io"

	"github.com/jcorbin/gofourth/internal/flushio"
)

type Option interface{ apply(ft *Forth) }

var defaults = []Option{
	inputOption{bytes.NewReader(nil)},
	outputOption{io.Discard},
	diagOption{io.Discard},
}

func (ft *Forth) apply(opts ...Option) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(ft)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ft)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(ft *Forth) {
	ft.logfn = logfn
}

type inputOption struct{ io.Reader }
type sourceOption struct{ Source }
type outputOption struct{ io.Writer }
type diagOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type colorOption bool
type heapLimitOption int

func (i inputOption) apply(ft *Forth) {
	ft.setSource(newReaderSource(i.Reader, false))
}

func (s sourceOption) apply(ft *Forth) {
	ft.setSource(s.Source)
}

func (ft *Forth) setSource(src Source) {
	ft.source = src
	if cl, ok := src.(io.Closer); ok {
		ft.closers = append(ft.closers, cl)
	}
}

func (o outputOption) apply(ft *Forth) {
	if ft.out.out != nil {
		ft.out.out.Flush()
	}
	ft.out.out = flushio.NewWriteFlusher(o.Writer)
}

func (o diagOption) apply(ft *Forth) {
	if ft.out.diag != nil {
		ft.out.diag.Flush()
	}
	ft.out.diag = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(ft *Forth) {
	ft.out.out = flushio.WriteFlushers(ft.out.out, flushio.NewWriteFlusher(o.Writer))
}

func (on colorOption) apply(ft *Forth) {
	ft.out.color = bool(on)
}

func (lim heapLimitOption) apply(ft *Forth) {
	ft.heap.limit = int(lim)
}
