package services

import (
	"testing"
	"time"

	"quickbite-backend/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuth(t *testing.T) *AuthService {
	t.Helper()
	db := setupTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupAuth(t)

	u, err := svc.Register("  Somchai@Example.COM ", "s3cret", "Somchai", "Jaidee", "0812345678")
	require.NoError(t, err)
	assert.Equal(t, "somchai@example.com", u.Email) // normalize แล้ว
	assert.Equal(t, "customer", u.Role)
	assert.NotEqual(t, "s3cret", u.Password) // ต้องเป็น hash

	token, logged, err := svc.Login("somchai@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	// token ต้อง parse กลับได้ด้วย secret เดิม
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := setupAuth(t)

	_, err := svc.Register("a@b.c", "x", "A", "B", "")
	require.NoError(t, err)

	_, err = svc.Register("a@b.c", "y", "A", "B", "")
	assert.EqualError(t, err, "email already registered")
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := setupAuth(t)

	_, err := svc.Register("a@b.c", "right", "A", "B", "")
	require.NoError(t, err)

	_, _, err = svc.Login("a@b.c", "wrong")
	assert.EqualError(t, err, "invalid credentials")

	_, _, err = svc.Login("nobody@b.c", "right")
	assert.EqualError(t, err, "invalid credentials")
}
