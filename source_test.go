package main

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderSource(t *testing.T) {
	src := newReaderSource(strings.NewReader("one\ntwo"), false)
	defer src.Close()
	assert.False(t, src.Echo())

	line, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	line, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "two", line, "final unterminated line still delivered")

	_, err = src.ReadLine()
	assert.Equal(t, io.EOF, err)
}

func TestReaderSource_echoFlag(t *testing.T) {
	src := newReaderSource(strings.NewReader(""), true)
	defer src.Close()
	assert.True(t, src.Echo())
}
