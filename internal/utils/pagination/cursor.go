package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	svcErr "github.com/oggyb/matchcore/internal/errors"
)

// Cursor is the opaque pagination state we encode/decode.
// ActorID + UpdatedUnix (in millis) establish a stable cursor for decision
// lists; ID alone is used for id-ordered lists such as candidates.
type Cursor struct {
	ActorID     uint64 `json:"actor_id,omitempty"`
	UpdatedUnix int64  `json:"updated_unix,omitempty"`
	ID          uint64 `json:"id,omitempty"`
}

// Encode converts a Cursor into a Base64 string.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a Base64 string into a Cursor.
// Empty token → empty cursor (first page).
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, svcErr.ErrInvalidPageToken
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return Cursor{}, svcErr.ErrInvalidPageToken
	}
	return c, nil
}
