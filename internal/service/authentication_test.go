package service

import (
	"context"
	"testing"
	"time"

	"ticketdesk/internal/model"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123!", hash)

	require.NoError(t, ComparePassword(hash, "Secret123!"))
	require.Error(t, ComparePassword(hash, "wrong"))
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	user := model.User{Username: "alice", PasswordHash: hash, Role: "user"}

	require.NoError(t, AuthenticateUser(context.Background(), user, "Secret123!"))
	require.Error(t, AuthenticateUser(context.Background(), user, "wrong"))
}

func TestDummyCompare(t *testing.T) {
	// 不會 panic，也沒有回傳值可驗證
	DummyCompare("anything")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := model.User{Username: "alice", Role: "staff"}
	token, err := IssueAccessToken(user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "staff", claims.Role)
	require.Equal(t, "alice", claims.Subject)
}

func TestAccessTokenErrors(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := IssueAccessToken(model.User{Username: "alice"}, time.Hour)
	require.Error(t, err)
	_, err = VerifyAccessToken("whatever")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	_, err = VerifyAccessToken("not-a-token")
	require.Error(t, err)

	// 過期令牌必須驗證失敗
	token, err := IssueAccessToken(model.User{Username: "alice"}, -time.Hour)
	require.NoError(t, err)
	_, err = VerifyAccessToken(token)
	require.Error(t, err)

	// 換密鑰後舊令牌失效
	token, err = IssueAccessToken(model.User{Username: "alice"}, time.Hour)
	require.NoError(t, err)
	t.Setenv("JWT_SECRET", "other-secret")
	_, err = VerifyAccessToken(token)
	require.Error(t, err)
}
