package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/pkg/logger"
)

// IAdmissionRepository defines the admission persistence operations
type IAdmissionRepository interface {
	CreateAdmission(ctx context.Context, adm *models.Admission) (bool, error)
	GetAllAdmissions(ctx context.Context) ([]*models.Admission, error)
	WithTx(tx pgx.Tx) IAdmissionRepository
}

// AdmissionRepository handles admission database operations
type AdmissionRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewAdmissionRepository creates a new AdmissionRepository
func NewAdmissionRepository(db DBTX) *AdmissionRepository {
	return &AdmissionRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// WithTx returns a repository bound to tx
func (r *AdmissionRepository) WithTx(tx pgx.Tx) IAdmissionRepository {
	return &AdmissionRepository{db: tx, sb: r.sb}
}

// CreateAdmission inserts an admission. It reports false when the student
// already holds an admission for the course.
func (r *AdmissionRepository) CreateAdmission(ctx context.Context, adm *models.Admission) (bool, error) {
	sql, args, err := r.sb.Insert("admissions").
		Columns("student_id", "course_id", "institution_id", "faculty_id", "status").
		Values(adm.StudentID, adm.CourseID, adm.InstitutionID, adm.FacultyID, adm.Status).
		Suffix("ON CONFLICT (student_id, course_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build create admission query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", adm.StudentID).Int64("courseID", adm.CourseID).Msg("Error creating admission")
		return false, fmt.Errorf("error creating admission: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// GetAllAdmissions retrieves all admissions, newest first
func (r *AdmissionRepository) GetAllAdmissions(ctx context.Context) ([]*models.Admission, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_id", "institution_id", "faculty_id", "status", "created_at").
		From("admissions").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all admissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying admissions: %w", err)
	}
	defer rows.Close()

	admissions := []*models.Admission{}
	for rows.Next() {
		a := &models.Admission{}
		if err := rows.Scan(&a.ID, &a.StudentID, &a.CourseID, &a.InstitutionID, &a.FacultyID, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning admission row: %w", err)
		}
		admissions = append(admissions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admission rows: %w", err)
	}

	return admissions, nil
}
