package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
	"github.com/yigit/careerguide/internal/pkg/dberrors"
	"github.com/yigit/careerguide/internal/pkg/logger"
)

// IFacultyRepository defines the faculty persistence operations
type IFacultyRepository interface {
	CreateFaculty(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
}

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db DBTX) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CreateFaculty creates a new faculty and returns the stored row
func (r *FacultyRepository) CreateFaculty(ctx context.Context, faculty *models.Faculty) (*models.Faculty, error) {
	sql, args, err := r.sb.Insert("faculties").
		Columns("name", "institution_id").
		Values(faculty.Name, faculty.InstitutionID).
		Suffix("RETURNING id, name, institution_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create faculty SQL")
		return nil, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	created := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.Name, &created.InstitutionID)
	if err != nil {
		if _, ok := dberrors.IsForeignKeyError(err); ok {
			return nil, apperrors.ErrInstitutionNotFound
		}
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}

	return created, nil
}

// GetAllFaculties retrieves all faculties
func (r *FacultyRepository) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "name", "institution_id").
		From("faculties").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all faculties SQL")
		return nil, fmt.Errorf("failed to build get all faculties query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all faculties query")
		return nil, fmt.Errorf("error querying faculties: %w", err)
	}
	defer rows.Close()

	faculties := []*models.Faculty{}
	for rows.Next() {
		faculty := &models.Faculty{}
		if err := rows.Scan(&faculty.ID, &faculty.Name, &faculty.InstitutionID); err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculties, nil
}
