package repomanager

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryRepositoryManager_ReturnsInterface(t *testing.T) {
	m := NewMemoryRepositoryManager()
	require.NotNil(t, m)

	assert.NotNil(t, m.Users())
	assert.NotNil(t, m.Sessions())
	assert.NotNil(t, m.Credentials())
}

func TestMemoryRepositoryManager_SharesState(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryRepositoryManager()

	u, err := m.Users().Create(ctx, &models.User{Email: "a@example.com"})
	require.NoError(t, err)

	got, err := m.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email)

	s, err := m.Sessions().Create(ctx, &models.ChatSession{OwnerID: u.ID})
	require.NoError(t, err)
	list, err := m.Sessions().ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, s.ID, list[0].ID)
}
