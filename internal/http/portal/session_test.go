package portal

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_RoundTrip(t *testing.T) {
	sessions := NewSessions([]byte("test-secret"))

	companyID := uuid.New()
	clientID := uuid.New()

	token, err := sessions.Mint(companyID, clientID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotCompany, gotClient, err := sessions.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, companyID, gotCompany)
	assert.Equal(t, clientID, gotClient)
}

func TestSessions_RejectsExpired(t *testing.T) {
	sessions := NewSessions([]byte("test-secret"))

	token, err := sessions.Mint(uuid.New(), uuid.New())
	require.NoError(t, err)

	sessions.now = func() time.Time { return time.Now().Add(SessionTTL + time.Minute) }

	_, _, err = sessions.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessions_RejectsWrongSecret(t *testing.T) {
	token, err := NewSessions([]byte("one-secret")).Mint(uuid.New(), uuid.New())
	require.NoError(t, err)

	_, _, err = NewSessions([]byte("another-secret")).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessions_RejectsGarbage(t *testing.T) {
	_, _, err := NewSessions([]byte("test-secret")).Verify("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidSession)
}
