package schema

import (
	"errors"

	"github.com/bytedance/sonic"
)

// decodeAPI mirrors encoding/json semantics, keeps number literals and
// rejects invalid UTF-8 inside strings.
var decodeAPI = sonic.Config{
	EscapeHTML:     true,
	SortMapKeys:    true,
	UseNumber:      true,
	CopyString:     true,
	ValidateString: true,
}.Froze()

var errEmptyPayload = errors.New("empty payload")

// Decode parses a raw bus payload into a Value tree.
// Any failure is returned as a *DecodeError matching ErrDecode.
func Decode(payload []byte) (Value, error) {
	if len(payload) == 0 {
		return Value{}, &DecodeError{Size: 0, Err: errEmptyPayload}
	}

	var raw any
	if err := decodeAPI.Unmarshal(payload, &raw); err != nil {
		return Value{}, &DecodeError{Size: len(payload), Err: err}
	}

	v, err := fromAny(raw)
	if err != nil {
		return Value{}, &DecodeError{Size: len(payload), Err: err}
	}
	return v, nil
}
