package lineinput

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_lines(t *testing.T) {
	in := Reader{Queue: []io.Reader{strings.NewReader("one\ntwo\nthree")}}

	for i, want := range []string{"one", "two", "three"} {
		line, err := in.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
		assert.Equal(t, i+1, in.Loc.Line)
	}

	_, err := in.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestReader_crlf(t *testing.T) {
	in := Reader{Queue: []io.Reader{strings.NewReader("one\r\ntwo\r\n")}}

	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	line, err = in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "two", line)
}

func TestReader_queueRollsOver(t *testing.T) {
	in := Reader{Queue: []io.Reader{
		strings.NewReader("a\n"),
		strings.NewReader("b\n"),
	}}

	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "a", line)

	line, err = in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "b", line)
	assert.Equal(t, 1, in.Loc.Line, "line numbers restart per stream")

	_, err = in.ReadLine()
	assert.Equal(t, io.EOF, err)
}

type closeCounter struct {
	io.Reader
	closed int
}

func (cc *closeCounter) Close() error {
	cc.closed++
	return nil
}

func TestReader_closesExhaustedStreams(t *testing.T) {
	cc := &closeCounter{Reader: strings.NewReader("a\n")}
	in := Reader{Queue: []io.Reader{cc, strings.NewReader("b\n")}}

	_, err := in.ReadLine()
	require.NoError(t, err)
	_, err = in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, 1, cc.closed, "first stream closed on rollover")

	require.NoError(t, in.Close())
}

func TestReader_closeDrainsQueue(t *testing.T) {
	queued := &closeCounter{Reader: strings.NewReader("never read")}
	in := Reader{Queue: []io.Reader{strings.NewReader("a\n"), queued}}

	_, err := in.ReadLine()
	require.NoError(t, err)

	require.NoError(t, in.Close())
	assert.Equal(t, 1, queued.closed)

	_, err = in.ReadLine()
	assert.Equal(t, io.EOF, err)
}
