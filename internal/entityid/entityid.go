package entityid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Size is the byte length of a token.
const Size = 32

var ErrInvalidToken = errors.New("invalid entity id")

// Token is the stable identity of an entity: the id string with hyphens
// stripped, stored as raw bytes.
type Token [Size]byte

// Parse strips hyphens from id and accepts it if exactly Size characters remain.
func Parse(id string) (Token, error) {
	var t Token
	trimmed := strings.ReplaceAll(id, "-", "")
	if len(trimmed) != Size {
		return t, fmt.Errorf("%w %q: want %d characters without hyphens, got %d", ErrInvalidToken, id, Size, len(trimmed))
	}
	copy(t[:], trimmed)
	return t, nil
}

// New generates a fresh token from a random UUID.
func New() Token {
	t, _ := Parse(uuid.NewString())
	return t
}

// String returns the token characters.
func (t Token) String() string {
	return string(t[:])
}

// IsZero reports whether t was never set.
func (t Token) IsZero() bool {
	return t == Token{}
}

// UUID interprets the token as a raw 32-hex-digit UUID.
func (t Token) UUID() (uuid.UUID, error) {
	u, err := uuid.ParseBytes(t[:])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %w", ErrInvalidToken, t.String(), err)
	}
	return u, nil
}

// Hyphenated returns the canonical 8-4-4-4-12 form of the token if it is a
// valid UUID, else the raw token characters.
func (t Token) Hyphenated() string {
	if u, err := t.UUID(); err == nil {
		return u.String()
	}
	return t.String()
}
