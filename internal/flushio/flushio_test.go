package flushio_test

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/stackr/internal/flushio"
)

func TestNewWriteFlusher(t *testing.T) {
	var buf bytes.Buffer
	wf := flushio.NewWriteFlusher(&buf)
	_, _ = wf.Write([]byte("hi"))
	assert.Equal(t, "hi", buf.String(), "expected buffers to be written through")
	assert.NoError(t, wf.Flush())

	var sb strings.Builder
	_, isBufio := flushio.NewWriteFlusher(&sb).(*bufio.Writer)
	assert.False(t, isBufio, "expected no buffering of a strings.Builder")

	bw := bufio.NewWriter(os.Stdout)
	assert.Equal(t, flushio.WriteFlusher(bw), flushio.NewWriteFlusher(bw))

	assert.Equal(t, flushio.Discard, flushio.NewWriteFlusher(nil))
}

func TestTee(t *testing.T) {
	var a, b bytes.Buffer
	bw := bufio.NewWriter(&b)
	wf := flushio.Tee(flushio.NewWriteFlusher(&a), nil, bw)
	_, err := wf.Write([]byte("both"))
	assert.NoError(t, err)
	assert.Equal(t, "both", a.String())
	assert.Equal(t, "", b.String(), "expected buffered writes to wait for flush")
	assert.NoError(t, wf.Flush())
	assert.Equal(t, "both", b.String())

	assert.Equal(t, flushio.WriteFlusher(bw), flushio.Tee(nil, bw))
	assert.Equal(t, flushio.Discard, flushio.Tee())
}
