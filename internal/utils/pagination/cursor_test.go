package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svcErr "github.com/oggyb/matchcore/internal/errors"
)

func TestEncodeDecode(t *testing.T) {
	tok, err := Encode(Cursor{ActorID: 7, UpdatedUnix: 1700000000000})
	require.NoError(t, err)

	c, err := Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), c.ActorID)
	assert.Equal(t, int64(1700000000000), c.UpdatedUnix)
}

func TestDecode_EmptyIsFirstPage(t *testing.T) {
	c, err := Decode("")
	require.NoError(t, err)
	assert.Equal(t, Cursor{}, c)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode("%%%")
	assert.ErrorIs(t, err, svcErr.ErrInvalidPageToken)

	_, err = Decode("bm90LWpzb24=") // "not-json"
	assert.ErrorIs(t, err, svcErr.ErrInvalidPageToken)
}
