package relaypager

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var _encoder = base64.StdEncoding

// Cursor is the decoded form of an opaque pagination token. A token names the
// logical row type and the primary key of the row it points at.
type Cursor struct {
	// TypeName is the logical name of the row type, e.g. "User".
	TypeName string
	// RowID is the primary key of the cursor row. Decoded as uuid.UUID when
	// the encoded value parses as a UUID, kept as a raw string otherwise so
	// that non-UUID primary keys round-trip unchanged.
	RowID any
}

// EncodeCursor produces the opaque token base64("typeName:rowID").
func EncodeCursor(typeName string, rowID any) (string, error) {
	if rowID == nil {
		return "", fmt.Errorf("%w: empty row id", ErrInvalidCursor)
	}

	id := fmt.Sprint(rowID)
	if id == "" {
		return "", fmt.Errorf("%w: empty row id", ErrInvalidCursor)
	}

	return _encoder.EncodeToString([]byte(typeName + ":" + id)), nil
}

// DecodeCursor parses an opaque token back into a Cursor. The token is split
// on the FIRST colon, so row ids may themselves contain colons.
func DecodeCursor(token string) (Cursor, error) {
	data, err := _encoder.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: not a base64 string: %v", ErrInvalidCursor, err)
	}

	typeName, rawID, ok := strings.Cut(string(data), ":")
	if !ok {
		return Cursor{}, fmt.Errorf("%w: missing type separator", ErrInvalidCursor)
	}

	if id, err := uuid.Parse(rawID); err == nil {
		return Cursor{TypeName: typeName, RowID: id}, nil
	}

	return Cursor{TypeName: typeName, RowID: rawID}, nil
}
