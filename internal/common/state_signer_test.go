package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStateSigner_RoundTrip(t *testing.T) {
	s := NewStateSigner([]byte("secret"), time.Minute)

	state, nonce, err := s.Issue()
	require.NoError(t, err)
	require.Len(t, nonce, 32)

	got, err := s.Validate(state)
	require.NoError(t, err)
	require.Equal(t, nonce, got)
}

func TestStateSigner_RejectsForeignSignature(t *testing.T) {
	state, _, err := NewStateSigner([]byte("other"), time.Minute).Issue()
	require.NoError(t, err)

	_, err = NewStateSigner([]byte("secret"), time.Minute).Validate(state)
	require.Error(t, err)
}

func TestStateSigner_RejectsExpired(t *testing.T) {
	s := NewStateSigner([]byte("secret"), -time.Minute)

	state, _, err := s.Issue()
	require.NoError(t, err)

	_, err = s.Validate(state)
	require.Error(t, err)
}

func TestStateSigner_RejectsGarbage(t *testing.T) {
	_, err := NewStateSigner([]byte("secret"), time.Minute).Validate("not-a-token")
	require.Error(t, err)
}
