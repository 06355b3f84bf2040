package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	StudentRepository     *StudentRepository
	StartupRepository     *StartupRepository
	InternshipRepository  *InternshipRepository
	ApplicationRepository *ApplicationRepository
	DomainRepository      *DomainRepository
	AlertRepository       *AlertRepository
	TokenRepository       *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		StudentRepository:     NewStudentRepository(db),
		StartupRepository:     NewStartupRepository(db),
		InternshipRepository:  NewInternshipRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		DomainRepository:      NewDomainRepository(db),
		AlertRepository:       NewAlertRepository(db),
		TokenRepository:       NewTokenRepository(db),
	}
}
