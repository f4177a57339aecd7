package core

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIdentifiers(t *testing.T) {
	a, b := NewIdentifier(), NewIdentifier()
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, NilIdentifier, a)

	parsed, err := uuid.Parse(a.String())
	assert.NoError(t, err)
	assert.Equal(t, a, Identifier(parsed))

	assert.Len(t, a.Short(), 8)
	assert.Equal(t, a.String()[:8], a.Short())
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", NilIdentifier.String())
}
