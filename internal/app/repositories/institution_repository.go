package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/pkg/apperrors"
	"github.com/yigit/careerguide/internal/pkg/logger"
)

var institutionColumns = []string{"id", "name", "number_of_students", "number_of_departments", "number_of_courses", "logo", "created_at"}

// IInstitutionRepository defines the institution persistence operations
type IInstitutionRepository interface {
	CreateInstitution(ctx context.Context, inst *models.Institution) (*models.Institution, error)
	GetAllInstitutions(ctx context.Context) ([]*models.Institution, error)
	GetUniversities(ctx context.Context) ([]*models.University, error)
	DeleteInstitution(ctx context.Context, id int64) (*models.Institution, error)
}

// InstitutionRepository handles institution database operations
type InstitutionRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewInstitutionRepository creates a new InstitutionRepository
func NewInstitutionRepository(db DBTX) *InstitutionRepository {
	return &InstitutionRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanInstitution(row pgx.Row) (*models.Institution, error) {
	inst := &models.Institution{}
	err := row.Scan(&inst.ID, &inst.Name, &inst.NumberOfStudents, &inst.NumberOfDepartments,
		&inst.NumberOfCourses, &inst.Logo, &inst.CreatedAt)
	return inst, err
}

// CreateInstitution inserts an institution and returns the stored row
func (r *InstitutionRepository) CreateInstitution(ctx context.Context, inst *models.Institution) (*models.Institution, error) {
	sql, args, err := r.sb.Insert("institutions").
		Columns("name", "number_of_students", "number_of_departments", "number_of_courses", "logo").
		Values(inst.Name, inst.NumberOfStudents, inst.NumberOfDepartments, inst.NumberOfCourses, inst.Logo).
		Suffix("RETURNING id, name, number_of_students, number_of_departments, number_of_courses, logo, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create institution query: %w", err)
	}

	created, err := scanInstitution(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Str("name", inst.Name).Msg("Error creating institution")
		return nil, fmt.Errorf("error creating institution: %w", err)
	}

	return created, nil
}

// GetAllInstitutions retrieves all institutions
func (r *InstitutionRepository) GetAllInstitutions(ctx context.Context) ([]*models.Institution, error) {
	sql, args, err := r.sb.Select(institutionColumns...).
		From("institutions").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all institutions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying institutions: %w", err)
	}
	defer rows.Close()

	institutions := []*models.Institution{}
	for rows.Next() {
		inst, err := scanInstitution(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning institution row: %w", err)
		}
		institutions = append(institutions, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating institution rows: %w", err)
	}

	return institutions, nil
}

// GetUniversities retrieves the id/name/logo projection of all institutions
func (r *InstitutionRepository) GetUniversities(ctx context.Context) ([]*models.University, error) {
	sql, args, err := r.sb.Select("id", "name", "logo").
		From("institutions").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get universities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying universities: %w", err)
	}
	defer rows.Close()

	universities := []*models.University{}
	for rows.Next() {
		u := &models.University{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Logo); err != nil {
			return nil, fmt.Errorf("error scanning university row: %w", err)
		}
		universities = append(universities, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating university rows: %w", err)
	}

	return universities, nil
}

// DeleteInstitution removes an institution and returns the deleted row.
// Faculties and courses go with it through ON DELETE CASCADE.
func (r *InstitutionRepository) DeleteInstitution(ctx context.Context, id int64) (*models.Institution, error) {
	sql, args, err := r.sb.Delete("institutions").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, number_of_students, number_of_departments, number_of_courses, logo, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delete institution query: %w", err)
	}

	deleted, err := scanInstitution(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		logger.Error().Err(err).Int64("institutionID", id).Msg("Error deleting institution")
		return nil, fmt.Errorf("error deleting institution: %w", err)
	}

	return deleted, nil
}
