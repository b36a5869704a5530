package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/freshstack/site-platform/internal/config"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func userRow(t *testing.T, id uuid.UUID, email, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "email", "password", "role", "created_at"}).
		AddRow(id, email, string(hash), "admin", time.Now())
}

func TestLoginSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, authTestConfig())

	userID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "client_users" WHERE email = \$1`).
		WithArgs("owner@example.com", 1).
		WillReturnRows(userRow(t, userID, "owner@example.com", "hunter2"))
	mock.ExpectExec(`INSERT INTO "refresh_tokens"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.Login("owner@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Len(t, resp.RefreshToken, 64)
	assert.Equal(t, userID, resp.User.ID)

	claims, err := svc.ParseAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "admin", claims["role"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, authTestConfig())

	mock.ExpectQuery(`SELECT \* FROM "client_users" WHERE email = \$1`).
		WillReturnRows(userRow(t, uuid.New(), "owner@example.com", "hunter2"))

	_, err := svc.Login("owner@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, authTestConfig())

	mock.ExpectQuery(`SELECT \* FROM "client_users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutUnknownTokenIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, authTestConfig())

	mock.ExpectExec(`UPDATE "refresh_tokens" SET "revoked"=\$1 WHERE token_hash = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, svc.Logout("never-issued"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(nil, authTestConfig())

	_, err := svc.ParseAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, hashToken("abc"), hashToken("abc"))
	assert.NotEqual(t, hashToken("abc"), hashToken("abd"))
	assert.Len(t, hashToken("abc"), 64)
}
