package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := store.Get(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	assert.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)

	// destroying an unknown token is not an error
	assert.NoError(t, store.Destroy(context.Background(), "no-such-token"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	assert.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSignedTokens(t *testing.T) {
	signed := SignToken("abc123", "secret")

	token, ok := ParseSignedToken(signed, "secret")
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)

	// wrong secret
	_, ok = ParseSignedToken(signed, "other-secret")
	assert.False(t, ok)

	// tampered token
	_, ok = ParseSignedToken("zzz999"+signed[6:], "secret")
	assert.False(t, ok)

	// garbage values
	_, ok = ParseSignedToken("no-signature-here", "secret")
	assert.False(t, ok)
	_, ok = ParseSignedToken("", "secret")
	assert.False(t, ok)
}
