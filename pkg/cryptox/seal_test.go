package cryptox_test

import (
	"testing"

	"github.com/aussiebroadwan/cashbook/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	s, err := cryptox.NewSealer([]byte("test-invite-secret-12345"), "invite-token")
	require.NoError(t, err)

	plaintext := []byte("some-invite-token")
	sealed, err := s.Seal(plaintext, []byte("inv_1"))
	require.NoError(t, err)
	require.NotEqual(t, plaintext, sealed)

	opened, err := s.Open(sealed, []byte("inv_1"))
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)
}

func TestSealRandomNonce(t *testing.T) {
	s, err := cryptox.NewSealer([]byte("nonce-secret"), "invite-token")
	require.NoError(t, err)

	a, err := s.Seal([]byte("same"), nil)
	require.NoError(t, err)
	b, err := s.Seal([]byte("same"), nil)
	require.NoError(t, err)

	require.NotEqual(t, a, b, "each seal should use a fresh nonce")
}

func TestOpenRejectsWrongAdditionalData(t *testing.T) {
	s, err := cryptox.NewSealer([]byte("ad-secret"), "invite-token")
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("token"), []byte("inv_1"))
	require.NoError(t, err)

	_, err = s.Open(sealed, []byte("inv_2"))
	require.Error(t, err)
}

func TestOpenRejectsOtherPurpose(t *testing.T) {
	secret := []byte("shared-secret")
	a, err := cryptox.NewSealer(secret, "invite-token")
	require.NoError(t, err)
	b, err := cryptox.NewSealer(secret, "something-else")
	require.NoError(t, err)

	sealed, err := a.Seal([]byte("token"), nil)
	require.NoError(t, err)

	_, err = b.Open(sealed, nil)
	require.Error(t, err)
}

func TestOpenTooShort(t *testing.T) {
	s, err := cryptox.NewEphemeralSealer("invite-token")
	require.NoError(t, err)

	_, err = s.Open([]byte("short"), nil)
	require.ErrorIs(t, err, cryptox.ErrSealedTooShort)
}

func TestNewSealerEmptySecret(t *testing.T) {
	_, err := cryptox.NewSealer(nil, "invite-token")
	require.Error(t, err)
}
