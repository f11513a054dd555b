package printing

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_LinePrefixWriter_Write(t *testing.T) {
	toWrite := []byte("a calculator\n  + adds\n  + subtracts\n")
	var b bytes.Buffer
	tested := NewLinePrefixWriter(&b, "  > ")
	n, err := tested.Write(toWrite)
	require.NoError(t, err)
	require.Equal(t, len(toWrite), n)
	require.Equal(t, "  > a calculator\n  >   + adds\n  >   + subtracts\n", b.String())
}

func Test_LinePrefixWriter_Write_noNewlineAtEnd(t *testing.T) {
	toWrite := []byte("one\ntwo\nthree")
	var b bytes.Buffer
	tested := NewLinePrefixWriter(&b, "  > ")
	n, err := tested.Write(toWrite)
	require.NoError(t, err)
	require.Equal(t, len(toWrite), n)
	require.Equal(t, "  > one\n  > two\n  > three", b.String())
}

func Test_LinePrefixWriter_Write_continueMidLine(t *testing.T) {
	var b bytes.Buffer
	tested := NewLinePrefixWriter(&b, "  > ")
	_, err := tested.Write([]byte("partial "))
	require.NoError(t, err)
	_, err = tested.Write([]byte("line\nnext"))
	require.NoError(t, err)
	require.Equal(t, "  > partial line\n  > next", b.String())
}

func Test_LinePrefixWriter_Write_empty(t *testing.T) {
	var b bytes.Buffer
	tested := NewLinePrefixWriter(&b, "  > ")
	n, err := tested.Write(nil)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Empty(t, b.String())
}

func Test_Indent(t *testing.T) {
	require.Equal(t, "", Indent(0))
	require.Equal(t, "", Indent(-1))
	require.Equal(t, "  ", Indent(1))
	require.Equal(t, "    ", Indent(2))
}
