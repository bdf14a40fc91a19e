package main

import (
	"io"

	"github.com/chzyer/readline"

	"github.com/jcorbin/gofourth/internal/lineinput"
)

// A Source is a line-oriented text input. ReadLine blocks for one logical
// line with no trailing newline; interactive implementations print their
// own prompt before reading. Echo reports whether lines read should be
// echoed back onto the output, which is how non-interactive input stays
// legible in a transcript.
type Source interface {
	ReadLine() (string, error)
	Echo() bool
}

// readerSource reads queued lines from any io.Reader; file and piped
// inputs are echoed.
type readerSource struct {
	in   lineinput.Reader
	echo bool
}

func newReaderSource(r io.Reader, echo bool) *readerSource {
	return &readerSource{
		in:   lineinput.Reader{Queue: []io.Reader{r}},
		echo: echo,
	}
}

func (src *readerSource) ReadLine() (string, error) { return src.in.ReadLine() }
func (src *readerSource) Echo() bool                { return src.echo }
func (src *readerSource) Close() error              { return src.in.Close() }

// readlineSource reads from an interactive terminal with prompt, line
// editing, and history.
type readlineSource struct {
	rl *readline.Instance
}

func newReadlineSource(prompt, history string) (*readlineSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &readlineSource{rl: rl}, nil
}

func (src *readlineSource) ReadLine() (string, error) {
	line, err := src.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", nil
	}
	return line, err
}

func (src *readlineSource) Echo() bool   { return false }
func (src *readlineSource) Close() error { return src.rl.Close() }
