package entityid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"550e8400-e29b-41d4-a716-446655440000", false},
		{"550e8400e29b41d4a716446655440000", false},
		{"5-5-0-e8400e29b41d4a716446655440000", false},
		{"bad-id", true},
		{"", true},
		{"550e8400-e29b-41d4-a716-4466554400001", true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tok, err := Parse(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.True(t, tok.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Len(t, tok.String(), Size)
			assert.NotContains(t, tok.String(), "-")
		})
	}
}

func TestUUIDView(t *testing.T) {
	tok, err := Parse("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)

	u, err := tok.UUID()
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", u.String())
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", tok.Hyphenated())

	// 32 characters is enough to be a token, not to be a UUID.
	odd, err := Parse("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	require.NoError(t, err)
	_, err = odd.UUID()
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, odd.String(), odd.Hyphenated())
}

func TestNew(t *testing.T) {
	a, b := New(), New()
	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)

	_, err := a.UUID()
	assert.NoError(t, err)
}
