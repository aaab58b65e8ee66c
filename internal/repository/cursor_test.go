package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakduk/jakduk-go/domain"
	"github.com/jakduk/jakduk-go/internal/repository"
)

func TestCursorRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)

	decoded, err := repository.DecodeCursor(repository.EncodeCursor(now))
	require.NoError(t, err)
	assert.True(t, now.Equal(decoded))
}

func TestDecodeCursorEmpty(t *testing.T) {
	decoded, err := repository.DecodeCursor("")
	require.NoError(t, err)
	assert.True(t, decoded.IsZero())
}

func TestDecodeCursorGarbage(t *testing.T) {
	_, err := repository.DecodeCursor("not-a-cursor")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	// valid base64, invalid timestamp
	_, err = repository.DecodeCursor("aGVsbG8=")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestPageVerify(t *testing.T) {
	cases := []struct {
		in   int64
		want int64
	}{
		{0, 20},
		{-3, 20},
		{10, 10},
		{50, 50},
		{51, 50},
	}

	for _, c := range cases {
		num := c.in
		repository.PageVerify(&num)
		assert.Equal(t, c.want, num)
	}
}
