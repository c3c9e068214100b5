package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-grid/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("ent")
	assert.Equal(t, "ent_1", gen.Generate())
	assert.Equal(t, "ent_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("sess")
	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "sess_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "sess_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())
}
