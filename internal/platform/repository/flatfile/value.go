package flatfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"mydb/internal/domain"
)

// serializeValue encodes one value into the fixed-width slot of its datatype.
func serializeValue(datatype domain.Datatype, value any) ([]byte, error) {
	switch datatype {
	case domain.String:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("cannot serialize %v (%T) as %s", value, value, datatype)
		}
		encoded := []byte(s)
		if len(encoded) > datatype.Length() {
			return nil, fmt.Errorf("%w: %d > %d bytes", domain.ErrValueTooLarge, len(encoded), datatype.Length())
		}
		return leftPad(encoded, datatype.Length()), nil

	case domain.Integer:
		n, err := toInt64(value)
		if err != nil {
			return nil, err
		}
		encoded := make([]byte, datatype.Length())
		binary.BigEndian.PutUint64(encoded, uint64(n))
		return encoded, nil
	}
	return nil, fmt.Errorf("cannot serialize %v as unknown datatype %s", value, datatype)
}

// deserializeValue reads exactly the slot width of datatype from the current
// position of r. STRING slots are stripped of their leading 0x00 padding, so
// a string value's own leading NUL bytes are lost; this is documented lossy
// behavior of the format.
func deserializeValue(datatype domain.Datatype, r io.Reader) (any, error) {
	slot := make([]byte, datatype.Length())
	if _, err := io.ReadFull(r, slot); err != nil {
		return nil, err
	}
	switch datatype {
	case domain.String:
		return string(bytes.TrimLeft(slot, "\x00")), nil
	case domain.Integer:
		return int64(binary.BigEndian.Uint64(slot)), nil
	}
	return nil, fmt.Errorf("cannot deserialize unknown datatype %s", datatype)
}

func leftPad(value []byte, length int) []byte {
	padded := make([]byte, length)
	copy(padded[length-len(value):], value)
	return padded
}

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		// JSON numbers arrive as float64.
		if math.Trunc(v) != v {
			return 0, fmt.Errorf("cannot serialize non-integral %v as %s", v, domain.Integer)
		}
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %v", domain.ErrValueOutOfRange, v)
		}
		return int64(v), nil
	}
	return 0, fmt.Errorf("cannot serialize %v (%T) as %s", value, value, domain.Integer)
}
