package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/gofourth/internal/panicerr"
)

// New creates an interpreter with defaults applied first, then the given
// options.
func New(opts ...Option) *Forth {
	ft := &Forth{
		consts: make(map[string]int),
		words:  make(map[string]body),
	}
	ft.apply(opts...)
	return ft
}

// Run drives the interpreter until quit/exit or end of input. Abnormal
// termination, panics included, comes back as a non-nil error; reaching
// end of input is a normal halt.
func (ft *Forth) Run(ctx context.Context) error {
	err := panicerr.Recover("fourth", func() error {
		return ft.run(ctx)
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Close releases any resources owned by the interpreter's sources.
func (ft *Forth) Close() (err error) {
	for i := len(ft.closers) - 1; i >= 0; i-- {
		if cerr := ft.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func WithInput(r io.Reader) Option   { return inputOption{r} }
func WithSource(src Source) Option   { return sourceOption{src} }
func WithOutput(w io.Writer) Option  { return outputOption{w} }
func WithDiag(w io.Writer) Option    { return diagOption{w} }
func WithTee(w io.Writer) Option     { return teeOption{w} }
func WithColor(on bool) Option       { return colorOption(on) }
func WithHeapLimit(cells int) Option { return heapLimitOption(cells) }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
