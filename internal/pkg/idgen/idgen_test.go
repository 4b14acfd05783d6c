package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("deck")

	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "deck_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "deck_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())

	_, err = uuid.Parse(idgen.NewUUID("").Generate())
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("team")
	assert.Equal(t, "team_1", gen.Generate())
	assert.Equal(t, "team_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
