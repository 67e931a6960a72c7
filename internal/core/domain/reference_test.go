package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReference_ResolvedAndUnresolved(t *testing.T) {
	ref := Resolved("recA1b2C3d4E5f6G7h")
	id, ok := ref.ID()
	assert.True(t, ok)
	assert.True(t, ref.IsResolved())
	assert.Equal(t, "recA1b2C3d4E5f6G7h", id)

	none := Unresolved()
	id, ok = none.ID()
	assert.False(t, ok)
	assert.False(t, none.IsResolved())
	assert.Empty(t, id)

	assert.False(t, Resolved("").IsResolved())
}

func TestReference_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A Reference `json:"a"`
		B Reference `json:"b"`
	}{A: Resolved("recA1b2C3d4E5f6G7h"), B: Unresolved()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"recA1b2C3d4E5f6G7h","b":null}`, string(data))

	var decoded struct {
		A Reference `json:"a"`
		B Reference `json:"b"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.A.IsResolved())
	assert.False(t, decoded.B.IsResolved())
}
