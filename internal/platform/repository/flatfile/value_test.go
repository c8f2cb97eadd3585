package flatfile

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mydb/internal/domain"
)

func TestSerializeIntegerRoundtrip(t *testing.T) {
	values := []int64{0, 1, -1, 42, -12345678, math.MaxInt64, math.MinInt64}
	for _, value := range values {
		encoded, err := serializeValue(domain.Integer, value)
		require.NoError(t, err)
		assert.Len(t, encoded, domain.Integer.Length())

		decoded, err := deserializeValue(domain.Integer, bytes.NewReader(encoded))
		require.NoError(t, err)
		assert.Equal(t, value, decoded)
	}
}

func TestSerializeIntegerBigEndian(t *testing.T) {
	encoded, err := serializeValue(domain.Integer, int64(1))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, encoded)

	encoded, err = serializeValue(domain.Integer, int64(-1))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, encoded)
}

func TestSerializeIntegerFromJSONNumber(t *testing.T) {
	// JSON numbers arrive as float64.
	encoded, err := serializeValue(domain.Integer, float64(7))
	require.NoError(t, err)

	decoded, err := deserializeValue(domain.Integer, bytes.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, int64(7), decoded)

	_, err = serializeValue(domain.Integer, 7.5)
	assert.Error(t, err)

	_, err = serializeValue(domain.Integer, 1e19)
	assert.ErrorIs(t, err, domain.ErrValueOutOfRange)
}

func TestSerializeIntegerWrongType(t *testing.T) {
	_, err := serializeValue(domain.Integer, "42")
	assert.Error(t, err)
}

func TestSerializeStringRoundtrip(t *testing.T) {
	values := []string{"", "Spam0", "sixteen bytes!!!", "héllo"}
	for _, value := range values {
		encoded, err := serializeValue(domain.String, value)
		require.NoError(t, err)
		assert.Len(t, encoded, domain.String.Length())

		decoded, err := deserializeValue(domain.String, bytes.NewReader(encoded))
		require.NoError(t, err)
		assert.Equal(t, value, decoded)
	}
}

func TestSerializeStringLeftPadding(t *testing.T) {
	encoded, err := serializeValue(domain.String, "abc")
	require.NoError(t, err)
	assert.Equal(t, append(make([]byte, 13), []byte("abc")...), encoded)
}

func TestSerializeStringTooLarge(t *testing.T) {
	_, err := serializeValue(domain.String, "seventeen bytes!!")
	assert.ErrorIs(t, err, domain.ErrValueTooLarge)

	// The limit is bytes, not characters.
	_, err = serializeValue(domain.String, "ééééééééé")
	assert.ErrorIs(t, err, domain.ErrValueTooLarge)
}

func TestSerializeStringWrongType(t *testing.T) {
	_, err := serializeValue(domain.String, 5)
	assert.Error(t, err)
}

func TestDeserializeStringStripsLeadingNul(t *testing.T) {
	// Leading NUL bytes in a value are indistinguishable from padding and
	// are lost on decode. Documented lossy behavior of the format.
	encoded, err := serializeValue(domain.String, "\x00abc")
	require.NoError(t, err)

	decoded, err := deserializeValue(domain.String, bytes.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, "abc", decoded)
}

func TestDeserializeTruncatedSlot(t *testing.T) {
	_, err := deserializeValue(domain.Integer, bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}
