package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_PublicOmitsDigest(t *testing.T) {
	u := &User{ID: "u1", Name: "Jane", Email: "jane@example.com", Role: RoleUser, Status: StatusActive, Digest: []byte("secret")}

	b, err := json.Marshal(u.Public())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.ElementsMatch(t, []string{"id", "name", "email", "role", "status", "lastActive"}, keys(m))
	assert.NotContains(t, string(b), "secret")
}

func TestUser_Clone(t *testing.T) {
	u := &User{ID: "u1", Digest: []byte{1, 2, 3}}
	c := u.Clone()
	c.Digest[0] = 9
	c.Name = "changed"

	assert.Equal(t, byte(1), u.Digest[0])
	assert.Empty(t, u.Name)
}

func TestUser_IsActive(t *testing.T) {
	assert.True(t, (&User{Status: StatusActive}).IsActive())
	assert.False(t, (&User{Status: StatusInactive}).IsActive())
}

func TestChatSession_Clone(t *testing.T) {
	s := &ChatSession{ID: "s1", Messages: []Message{{ID: "m1"}}}
	c := s.Clone()
	c.Messages[0].Content = "x"
	c.Messages = append(c.Messages, Message{ID: "m2"})

	assert.Len(t, s.Messages, 1)
	assert.Empty(t, s.Messages[0].Content)
}

func TestChatSession_JSONFieldNames(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := ChatSession{ID: "s1", OwnerID: "u1", Title: "t", CreatedAt: ts, UpdatedAt: ts,
		Messages: []Message{{ID: "m1", AuthorID: "u1", Content: "hi", Timestamp: ts, Kind: MessageKindUser}}}

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"s1","user_id":"u1","title":"t","created_at":"2024-01-02T03:04:05Z","updated_at":"2024-01-02T03:04:05Z",
		"messages":[{"id":"m1","user_id":"u1","content":"hi","timestamp":"2024-01-02T03:04:05Z","type":"user"}]}`, string(b))
}

func TestServiceCredential_CloneIsDeep(t *testing.T) {
	c := &ServiceCredential{ID: "c1", Details: map[string]any{
		"nested": map[string]any{"k": "v"},
		"list":   []any{"a", map[string]any{"x": 1.0}},
	}}
	n := c.Clone()
	n.Details["nested"].(map[string]any)["k"] = "changed"
	n.Details["list"].([]any)[1].(map[string]any)["x"] = 2.0

	assert.Equal(t, "v", c.Details["nested"].(map[string]any)["k"])
	assert.Equal(t, 1.0, c.Details["list"].([]any)[1].(map[string]any)["x"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
