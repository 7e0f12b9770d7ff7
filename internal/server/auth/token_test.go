package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 500_000_000, time.UTC)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	key := []byte("super-secret")
	tok, err := IssueToken("jane@example.com", key, time.Hour, fixedNow)
	require.NoError(t, err)

	sub, err := ParseToken(tok, key, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", sub)
}

func TestIssueToken_SubSecondTTLIsStillValid(t *testing.T) {
	t.Parallel()

	key := []byte("k")
	for _, ttl := range []time.Duration{time.Nanosecond, 100 * time.Millisecond, 1500 * time.Millisecond} {
		tok, err := IssueToken("a@example.com", key, ttl, fixedNow)
		require.NoError(t, err)

		_, err = ParseToken(tok, key, fixedNow)
		assert.NoError(t, err, ttl.String())
	}
}

func TestParseToken_Failures(t *testing.T) {
	t.Parallel()

	key := []byte("right")

	expired, err := IssueToken("a@example.com", key, -time.Second, fixedNow)
	require.NoError(t, err)

	valid, err := IssueToken("a@example.com", key, time.Hour, fixedNow)
	require.NoError(t, err)

	noSubject, err := IssueToken("", key, time.Hour, fixedNow)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "a@example.com"},
	}).SignedString(key)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "a@example.com", ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour))},
	}).SignedString(key)
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
		key   []byte
		now   time.Time
	}{
		{name: "expired", token: expired, key: key, now: fixedNow},
		{name: "expired later", token: valid, key: key, now: fixedNow.Add(2 * time.Hour)},
		{name: "wrong key", token: valid, key: []byte("wrong"), now: fixedNow},
		{name: "garbage", token: "not-a-token", key: key, now: fixedNow},
		{name: "empty", token: "", key: key, now: fixedNow},
		{name: "tampered payload", token: tampered, key: key, now: fixedNow},
		{name: "missing subject", token: noSubject, key: key, now: fixedNow},
		{name: "missing expiry", token: noExpiry, key: key, now: fixedNow},
		{name: "other algorithm", token: hs512, key: key, now: fixedNow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.key, tt.now)
			assert.ErrorIs(t, err, common.ErrorInvalidToken)
		})
	}
}
