package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/ciic/internhub/internal/app/models"
	appRepos "github.com/ciic/internhub/internal/app/repositories"
	"github.com/ciic/internhub/internal/pkg/apperrors"
)

// defaultDomains is the initial domain taxonomy offered in the catalog filter.
// Admins can extend it through the meta endpoints.
var defaultDomains = []appModels.InternshipDomain{
	{Key: "WEB", Label: "Web Development"},
	{Key: "MOBILE", Label: "Mobile Development"},
	{Key: "AI_ML", Label: "AI / Machine Learning"},
	{Key: "DATA", Label: "Data Science"},
	{Key: "IOT", Label: "Internet of Things"},
	{Key: "DESIGN", Label: "UI/UX Design"},
	{Key: "MARKETING", Label: "Marketing"},
}

// CreateDefaultData seeds the domain taxonomy and a default admin account if missing.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	domainRepo := appRepos.NewDomainRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (domains/admin)...")
	var finalErr error

	for i := range defaultDomains {
		domain := defaultDomains[i]
		err := domainRepo.Create(ctx, &domain)
		if err != nil && !errors.Is(err, apperrors.ErrDomainAlreadyExists) {
			lgr.Error().Err(err).Str("key", domain.Key).Msg("Error creating default internship domain")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Create Default Admin User --- //
	exists, err := userRepo.EmailExists(ctx, "admin@ciic.edu")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return finalErr
	}

	lgr.Info().Msg("Creating default admin user...")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.User{
		Email:     "admin@ciic.edu",
		Password:  string(hashedPassword),
		Name:      "CIIC Administrator",
		RoleType:  appModels.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
	return finalErr
}
