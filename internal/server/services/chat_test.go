package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/server/chat"
	"github.com/dmitrijs2005/opsbot/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_RoundTrip(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, token := h.signup(t, "jane@example.com", models.RoleUser)

	s, err := h.chat.CreateSession(ctx, token, "")
	require.NoError(t, err)
	assert.Equal(t, chat.DefaultTitle, s.Title)

	h.clock.advance(time.Second)
	msg, err := h.chat.PostMessage(ctx, token, s.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Content)

	got, err := h.chat.GetSession(ctx, token, s.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, models.MessageKindUser, got.Messages[0].Kind)
	assert.Equal(t, models.MessageKindBot, got.Messages[1].Kind)
	assert.Equal(t, common.SystemAuthorID, got.Messages[1].AuthorID)
	assert.True(t, got.UpdatedAt.After(s.UpdatedAt))

	list, err := h.chat.ListSessions(ctx, token)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, s.ID, list[0].ID)
}

func TestChat_IsolationEvenForAdmin(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, ownerToken := h.signup(t, "owner@example.com", models.RoleUser)
	_, adminToken := h.signup(t, "admin@example.com", models.RoleAdmin)

	s, err := h.chat.CreateSession(ctx, ownerToken, "private")
	require.NoError(t, err)

	_, err = h.chat.GetSession(ctx, adminToken, s.ID)
	assert.Equal(t, common.ErrorNotFound, err)

	_, err = h.chat.PostMessage(ctx, adminToken, s.ID, "hi")
	assert.Equal(t, common.ErrorNotFound, err)

	list, err := h.chat.ListSessions(ctx, adminToken)
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := h.chat.GetSession(ctx, ownerToken, s.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Messages)
}

func TestChat_RequiresValidToken(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.chat.ListSessions(ctx, "")
	assert.Equal(t, common.ErrorInvalidToken, err)

	_, err = h.chat.CreateSession(ctx, "nope", "t")
	assert.Equal(t, common.ErrorInvalidToken, err)
}
