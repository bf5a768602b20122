package pagination_test

import (
	"testing"
	"time"

	"github.com/fintrackr/budget-ledger/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryTokenRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 6, 3, 10, 30, 0, 123456789, time.UTC)
	entryID := "a6e6cf20-9f4f-4c3d-9f6e-1b2c3d4e5f60"

	token := pagination.EncodeEntryToken(createdAt, entryID)
	gotTime, gotID, err := pagination.DecodeEntryToken(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, entryID, gotID)
}

func TestDecodeEntryTokenRejectsGarbage(t *testing.T) {
	_, _, err := pagination.DecodeEntryToken("not-base64!!")
	assert.Error(t, err)

	_, _, err = pagination.DecodeEntryToken("bm8tc2VwYXJhdG9y") // "no-separator"
	assert.Error(t, err)
}
