package steganos

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/steganos/codec"
	"github.com/arloliu/steganos/errs"
	"github.com/arloliu/steganos/format"
	"github.com/arloliu/steganos/payload"
)

var carrier = strings.Repeat("The Quick Fox can't stop. ", 20)

func TestEncodeDecode(t *testing.T) {
	text := "I am 9 years old."
	bits, err := format.ParseBits("1")
	require.NoError(t, err)

	encoded, err := Encode(bits, text)
	require.NoError(t, err)
	require.Equal(t, "I am nine years old.", encoded)

	decoded, err := DecodeFullText(encoded, text)
	require.NoError(t, err)
	require.Equal(t, "1000", decoded.String())

	require.Equal(t, 4, BitCapacity(text))
	require.Len(t, GenerateBranchpoints(text), BitCapacity(text))
}

func TestEncode_CyclicFill(t *testing.T) {
	bits, err := format.ParseBits("1")
	require.NoError(t, err)

	encoded, err := Encode(bits, `"I am 9." he said.`, codec.WithCyclicFill(true))
	require.NoError(t, err)

	decoded, err := DecodeFullText(encoded, `"I am 9." he said.`)
	require.NoError(t, err)
	require.Equal(t, "1111", decoded.String())
}

func TestDecodePartialText(t *testing.T) {
	text := `I am 9, but I say "I am 8".`
	bits, err := format.ParseBits("11")
	require.NoError(t, err)
	encoded, err := Encode(bits, text)
	require.NoError(t, err)

	excerpt := string([]rune(encoded)[:9])
	got, err := DecodePartialText(excerpt, text, codec.Window{Start: 0, End: 6})
	require.NoError(t, err)
	require.Equal(t, "110?????", got.String())
}

func TestHideRevealMessage(t *testing.T) {
	require.GreaterOrEqual(t, MessageCapacity(carrier), 8)

	for _, c := range []format.CompressionType{format.CompressionNone, format.CompressionS2} {
		t.Run(c.String(), func(t *testing.T) {
			encoded, err := HideMessage([]byte("dawn"), carrier, payload.WithCompression(c))
			require.NoError(t, err)
			require.NotEqual(t, carrier, encoded)

			msg, err := RevealMessage(encoded, carrier)
			require.NoError(t, err)
			require.Equal(t, []byte("dawn"), msg)
		})
	}
}

func TestHideMessage_TooLong(t *testing.T) {
	msg := []byte(strings.Repeat("x", MessageCapacity(carrier)+1))

	_, err := HideMessage(msg, carrier)
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
}

func TestRevealMessage_WrongCarrier(t *testing.T) {
	encoded, err := HideMessage([]byte("dawn"), carrier)
	require.NoError(t, err)

	_, err = RevealMessage(encoded, "An unrelated text.")
	require.ErrorIs(t, err, errs.ErrAlignment)
}

func TestRevealMessagePartial(t *testing.T) {
	encoded, err := HideMessage([]byte("dawn"), carrier)
	require.NoError(t, err)

	msg, err := RevealMessagePartial(encoded, carrier, codec.Window{Start: 0, End: len(carrier)})
	require.NoError(t, err)
	require.Equal(t, []byte("dawn"), msg)

	// the header lives in the first sentence
	rest := strings.SplitAfterN(encoded, ". ", 2)[1]
	_, err = RevealMessagePartial(rest, carrier, codec.Window{Start: 26, End: -1})
	require.ErrorIs(t, err, errs.ErrIncompletePayload)
}

func TestCarrierID(t *testing.T) {
	require.Equal(t, CarrierID(carrier), CarrierID(strings.Clone(carrier)))
	require.NotEqual(t, CarrierID(carrier), CarrierID(carrier+" "))
}
