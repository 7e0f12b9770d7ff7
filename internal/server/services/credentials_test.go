package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_AddListDelete(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	u, token := h.signup(t, "jane@example.com", models.RoleUser)

	c, err := h.credentials.Add(ctx, token, "mongodb", map[string]any{
		"uri":     "mongodb://db:27017",
		"port":    27017,
		"options": map[string]any{"tls": true, "hosts": []any{"a", "b"}},
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, c.OwnerID)
	assert.Equal(t, "mongodb", c.Service)
	assert.Equal(t, float64(27017), c.Details["port"])
	assert.Equal(t, h.clock.t, c.CreatedAt)
	assert.Equal(t, h.clock.t, c.UpdatedAt)

	list, err := h.credentials.List(ctx, token)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)

	require.NoError(t, h.credentials.Delete(ctx, token, c.ID))
	assert.Equal(t, common.ErrorNotFound, h.credentials.Delete(ctx, token, c.ID))
}

func TestCredentials_NilDetails(t *testing.T) {
	h := newHarness(t)
	_, token := h.signup(t, "jane@example.com", models.RoleUser)

	c, err := h.credentials.Add(context.Background(), token, "airflow", nil)
	require.NoError(t, err)
	assert.NotNil(t, c.Details)
	assert.Empty(t, c.Details)
}

func TestCredentials_RejectsNonJSONDetails(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, token := h.signup(t, "jane@example.com", models.RoleUser)

	_, err := h.credentials.Add(ctx, token, "bad", map[string]any{"ch": make(chan int)})
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	list, err := h.credentials.List(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCredentials_IsolationEvenForAdmin(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, ownerToken := h.signup(t, "owner@example.com", models.RoleUser)
	_, adminToken := h.signup(t, "admin@example.com", models.RoleAdmin)

	c, err := h.credentials.Add(ctx, ownerToken, "github", map[string]any{"token": "t"})
	require.NoError(t, err)

	assert.Equal(t, common.ErrorNotFound, h.credentials.Delete(ctx, adminToken, c.ID))

	list, err := h.credentials.List(ctx, adminToken)
	require.NoError(t, err)
	assert.Empty(t, list)

	mine, err := h.credentials.List(ctx, ownerToken)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
