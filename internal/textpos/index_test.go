package textpos

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndex_ASCII(t *testing.T) {
	ix := New("hello")
	require.Equal(t, 5, ix.Len())
	for i := 0; i <= 5; i++ {
		require.Equal(t, i, ix.Rune(i))
		require.Equal(t, i, ix.Byte(i))
	}
}

func TestIndex_MultiByte(t *testing.T) {
	s := "é\u200bx" // 2 + 3 + 1 bytes
	ix := New(s)
	require.Equal(t, 3, ix.Len())
	require.Equal(t, 0, ix.Rune(0))
	require.Equal(t, 0, ix.Rune(1))
	require.Equal(t, 1, ix.Rune(2))
	require.Equal(t, 2, ix.Rune(5))
	require.Equal(t, 3, ix.Rune(6))
	require.Equal(t, 5, ix.Byte(2))
	require.Equal(t, 6, ix.Byte(10))
	require.Equal(t, 0, ix.Byte(-1))
}

func TestIndex_Spans(t *testing.T) {
	s := "naïve cafés"
	re := regexp.MustCompile(`caf\S+`)
	spans := New(s).Spans(re.FindAllStringIndex(s, -1))
	require.Equal(t, [][2]int{{6, 11}}, spans)
}

func TestIndex_Empty(t *testing.T) {
	ix := New("")
	require.Equal(t, 0, ix.Len())
	require.Equal(t, 0, ix.Rune(0))
}
