// Package hashid converts internal integer identifiers to opaque strings and
// back. The codec is configured once per process: default alphabet, empty
// salt and a minimum length of MinLength characters.
package hashid

import (
	"errors"
	"fmt"

	"github.com/speps/go-hashids/v2"
)

// MinLength is the minimum length of every encoded identifier.
const MinLength = 12

var (
	// ErrMalformed is returned when a code was not produced by this codec.
	ErrMalformed = errors.New("hashid: malformed identifier")
	// ErrNotFound is returned when a code decodes to no identifier at all.
	ErrNotFound = errors.New("hashid: no identifier")
)

var codec = mustCodec()

func mustCodec() *hashids.HashID {
	hd := hashids.NewData()
	hd.Salt = ""
	hd.MinLength = MinLength

	h, err := hashids.NewWithData(hd)
	if err != nil {
		panic(fmt.Sprintf("hashid: build codec: %v", err))
	}
	return h
}

// Encode returns the opaque form of id. Negative ids cannot be encoded.
func Encode(id int64) (string, error) {
	if id < 0 {
		return "", fmt.Errorf("hashid: negative id %d", id)
	}
	code, err := codec.EncodeInt64([]int64{id})
	if err != nil {
		return "", fmt.Errorf("hashid: encode %d: %w", id, err)
	}
	return code, nil
}

// Decode returns the identifier encoded in code. The returned error is
// ErrNotFound for an empty candidate list and ErrMalformed otherwise.
func Decode(code string) (int64, error) {
	if code == "" {
		return 0, ErrNotFound
	}

	ids, err := codec.DecodeInt64WithError(code)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(ids) == 0 {
		return 0, ErrNotFound
	}
	return ids[0], nil
}

// Lookup is Decode for callers that only care whether an id was present.
func Lookup(code string) (int64, bool) {
	id, err := Decode(code)
	if err != nil {
		return 0, false
	}
	return id, true
}
