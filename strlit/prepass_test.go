package strlit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNonASCIIPrepassLeavesASCIIAlone(t *testing.T) {
	out, err := nonASCIIPrepass([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(out))
}

func TestNonASCIIPrepassReencodesScalar(t *testing.T) {
	out, err := nonASCIIPrepass([]byte("h\xc3\xa9llo")) // "héllo"
	require.NoError(t, err)
	require.Equal(t, `h\U000000e9llo`, string(out))
}

func TestNonASCIIPrepassRejectsInvalidUTF8(t *testing.T) {
	_, err := nonASCIIPrepass([]byte{'a', 0xff, 'b'})
	require.Error(t, err)
}
