package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/oggyb/matchcore/internal/proto/codec"
)

func TestCodecIsRegistered(t *testing.T) {
	c := encoding.GetCodec(codec.Name)
	require.NotNil(t, c)
	assert.Equal(t, codec.Name, c.Name())
}

func TestCodecRoundTrip(t *testing.T) {
	type msg struct {
		ID    string `json:"id"`
		Bytes []byte `json:"bytes"`
	}
	c := codec.Codec{}

	raw, err := c.Marshal(&msg{ID: "7", Bytes: []byte{0, 1, 2}})
	require.NoError(t, err)

	var out msg
	require.NoError(t, c.Unmarshal(raw, &out))
	assert.Equal(t, "7", out.ID)
	assert.Equal(t, []byte{0, 1, 2}, out.Bytes)
}
