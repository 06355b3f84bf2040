package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciic/internhub/internal/app/migrations"
	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/repositories"
	"github.com/ciic/internhub/internal/pkg/apperrors"
	"github.com/ciic/internhub/internal/pkg/auth"
)

// Integration tests for the refresh token lifecycle. They run against the
// database named by DATABASE_URL and skip when it is not set.

func integrationAuthService(t *testing.T) (*AuthService, *repositories.TokenRepository) {
	t.Helper()

	_ = godotenv.Load() // allow .env for local runs
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping Postgres integration")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(ctx))

	require.NoError(t, migrations.NewMigrator(pool).MigrateFromDirectory("../../../migrations"))

	tokenRepo := repositories.NewTokenRepository(pool)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "integration-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "internhub",
	})

	svc := NewAuthService(
		repositories.NewUserRepository(pool),
		repositories.NewStudentRepository(pool),
		repositories.NewStartupRepository(pool),
		tokenRepo,
		jwtService,
		zerolog.Nop(),
	)
	return svc, tokenRepo
}

func registerIntegrationStudent(t *testing.T, svc *AuthService) dto.TokenResponse {
	t.Helper()

	suffix := strings.Split(uuid.NewString(), "-")[0]
	resp, err := svc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		Email:          fmt.Sprintf("it-%s@ciic.edu", suffix),
		Password:       "Sufficient1",
		Name:           "Integration Student",
		RegisterNumber: "IT" + strings.ToUpper(suffix),
		Department:     "CSE",
		Course:         "B.Tech CSE",
		Year:           3,
		CGPA:           8.4,
	})
	require.NoError(t, err)
	return resp.Token
}

func TestRefreshTokenIsSingleUse(t *testing.T) {
	svc, _ := integrationAuthService(t)
	ctx := context.Background()

	first := registerIntegrationStudent(t, svc)
	require.NotEmpty(t, first.RefreshToken)

	second, err := svc.RefreshToken(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The exchange revoked the submitted token
	_, err = svc.RefreshToken(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	// The replacement still works
	_, err = svc.RefreshToken(ctx, second.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshTokenRejectsExpiredUnknownAndBlank(t *testing.T) {
	svc, tokenRepo := integrationAuthService(t)
	ctx := context.Background()

	token := registerIntegrationStudent(t, svc)
	claims, err := svc.jwtService.ValidateAndExtractClaims(token.AccessToken)
	require.NoError(t, err)

	expired := uuid.NewString()
	require.NoError(t, tokenRepo.CreateToken(ctx, expired, claims.UserID, time.Now().Add(-time.Minute)))
	_, err = svc.RefreshToken(ctx, expired)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)

	_, err = svc.RefreshToken(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)

	_, err = svc.RefreshToken(ctx, "  ")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := integrationAuthService(t)
	ctx := context.Background()

	token := registerIntegrationStudent(t, svc)
	require.NoError(t, svc.Logout(ctx, token.RefreshToken))

	_, err := svc.RefreshToken(ctx, token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}
