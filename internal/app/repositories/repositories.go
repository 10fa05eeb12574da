package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// statementBuilder renders squirrel queries with Postgres placeholders
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	InstitutionRepository *InstitutionRepository
	FacultyRepository     *FacultyRepository
	CourseRepository      *CourseRepository
	ApplicationRepository *ApplicationRepository
	AdmissionRepository   *AdmissionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		InstitutionRepository: NewInstitutionRepository(db),
		FacultyRepository:     NewFacultyRepository(db),
		CourseRepository:      NewCourseRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		AdmissionRepository:   NewAdmissionRepository(db),
	}
}
