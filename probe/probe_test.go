package probe

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moolekkari/endianprobe/core"
	"github.com/moolekkari/endianprobe/internal/endian"
)

func TestRun(t *testing.T) {
	r := Run()

	assert.Equal(t, core.Word(258), r.Value)
	assert.Equal(t, endian.Host(), r.Order)
	assert.Equal(t, core.Pair{First: byte(258 & 0xff), Second: byte(258 >> 8)}, r.Portable)
	assert.Equal(t, r.Value, core.Join(r.Portable.Second, r.Portable.First))
	assert.True(t, r.Consistent())
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := Run().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "2 1", lines[1])
	if endian.IsBig() {
		assert.Equal(t, "1 2", lines[0])
	} else {
		assert.Equal(t, "2 1", lines[0])
	}
}

func TestRunIsIdempotent(t *testing.T) {
	var first, second bytes.Buffer
	_, err := Run().WriteTo(&first)
	require.NoError(t, err)
	_, err = Run().WriteTo(&second)
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
}

func TestConsistent(t *testing.T) {
	little := Result{
		Value:    Value,
		Overlay:  core.Pair{First: 2, Second: 1},
		Portable: core.Pair{First: 2, Second: 1},
		Order:    endian.LittleEndian,
	}
	assert.True(t, little.Consistent())

	big := little
	big.Order = endian.BigEndian
	assert.False(t, big.Consistent())
	big.Overlay = core.Pair{First: 1, Second: 2}
	assert.True(t, big.Consistent())
}

var errClosed = errors.New("closed")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errClosed
}

func TestWriteToError(t *testing.T) {
	_, err := Run().WriteTo(failingWriter{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errClosed))
}
