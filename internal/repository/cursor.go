package repository

import (
	"encoding/base64"
	"time"

	"github.com/jakduk/jakduk-go/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

// EncodeCursor encodes a creation timestamp into an opaque listing cursor.
func EncodeCursor(t time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(t.Format(time.RFC3339Nano)))
}

// DecodeCursor decodes the opaque cursor back into a timestamp.
// An empty cursor decodes to the zero time (first page).
func DecodeCursor(encoded string) (time.Time, error) {
	if encoded == "" {
		return time.Time{}, nil
	}

	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return time.Time{}, domain.ErrBadParamInput
	}

	t, err := time.Parse(time.RFC3339Nano, string(b))
	if err != nil {
		return time.Time{}, domain.ErrBadParamInput
	}
	return t, nil
}

// PageVerify clamps a requested page size into the allowed window.
func PageVerify(num *int64) {
	if *num <= 0 {
		*num = defaultPageSize
	}
	if *num > maxPageSize {
		*num = maxPageSize
	}
}
