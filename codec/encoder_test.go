package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/steganos/errs"
	"github.com/arloliu/steganos/format"
)

func mustBits(t testing.TB, s string) format.Bits {
	t.Helper()
	bits, err := format.ParseBits(s)
	require.NoError(t, err)

	return bits
}

func mustEncode(t testing.TB, bits, text string, opts ...EncoderOption) string {
	t.Helper()
	enc, err := NewEncoder(opts...)
	require.NoError(t, err)
	out, err := enc.Encode(mustBits(t, bits), text)
	require.NoError(t, err)

	return out
}

func TestEncoder_Encode(t *testing.T) {
	tests := []struct {
		name string
		text string
		bits string
		want string
	}{
		{
			name: "digit",
			text: "I am 9 years old.",
			bits: "1",
			want: "I am nine years old.",
		},
		{
			name: "no bits leaves text unchanged",
			text: "I am 9 years old.",
			bits: "",
			want: "I am 9 years old.",
		},
		{
			name: "all zeros leaves text unchanged",
			text: "I am 9 years old.",
			bits: "0000",
			want: "I am 9 years old.",
		},
		{
			name: "locals",
			text: "I am 9 years old.",
			bits: "0111",
			want: "I\u2060 am\u200b 9 years\u200b old.",
		},
		{
			name: "global edits move in lockstep",
			text: `I am 9, but I say "I am 8".`,
			bits: "11",
			want: "I\u2060 am nine, but I say \"I am eight\".",
		},
		{
			name: "quote global",
			text: `"I am 9." he said.`,
			bits: "01",
			want: "\"I\u2060 am 9.\" he said.",
		},
		{
			name: "contraction",
			text: "I won't.",
			bits: "01",
			want: "I will not.",
		},
		{
			name: "tab and directional mark",
			text: "end.\tnext",
			bits: "11",
			want: "end\u200f\u200e.    next",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, mustEncode(t, tt.bits, tt.text))
		})
	}
}

func TestEncoder_CyclicFill(t *testing.T) {
	got := mustEncode(t, "1", "I am 9 years old.", WithCyclicFill(true))
	require.Equal(t, "I\u2060 am\u200b nine years\u200b old.", got)

	got = mustEncode(t, "10", "I am 9 years old.", WithCyclicFill(true))
	require.Equal(t, "I am\u200b nine years old.", got)

	// an empty bit string has nothing to repeat
	got = mustEncode(t, "", "I am 9 years old.", WithCyclicFill(true))
	require.Equal(t, "I am 9 years old.", got)
}

func TestEncoder_Errors(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	_, err = enc.Encode(mustBits(t, "11111"), "I am 9 years old.")
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	require.ErrorContains(t, err, "5 bits, capacity 4")

	_, err = enc.Encode(format.Bits{format.One, format.Unknown}, "I am 9 years old.")
	require.ErrorIs(t, err, errs.ErrInvalidBit)

	_, err = enc.Encode(mustBits(t, "1"), "")
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestEncoder_Deterministic(t *testing.T) {
	text := corpus[5]
	bits := mustBits(t, "1011001")
	first := mustEncode(t, bits.String(), text)
	for range 5 {
		require.Equal(t, first, mustEncode(t, bits.String(), text))
	}
}
