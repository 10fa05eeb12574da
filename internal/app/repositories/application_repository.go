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

// IApplicationRepository defines the application persistence operations
type IApplicationRepository interface {
	CreateApplication(ctx context.Context, app *models.Application) (int64, error)
	GetApplicationByID(ctx context.Context, id int64) (*models.Application, error)
	GetAllApplications(ctx context.Context) ([]*models.Application, error)
	WithTx(tx pgx.Tx) IApplicationRepository
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db DBTX) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// WithTx returns a repository bound to tx
func (r *ApplicationRepository) WithTx(tx pgx.Tx) IApplicationRepository {
	return &ApplicationRepository{db: tx, sb: r.sb}
}

// gradeColumns lists subject1, grade1 ... subject8, grade8 in insert order
func gradeColumns() []string {
	cols := make([]string, 0, models.MaxSubjectGrades*2)
	for i := 1; i <= models.MaxSubjectGrades; i++ {
		cols = append(cols, fmt.Sprintf("subject%d", i), fmt.Sprintf("grade%d", i))
	}
	return cols
}

func applicationColumns() []string {
	cols := []string{"id", "student_name", "phone_number", "student_id", "university",
		"course_id", "faculty", "major_subject"}
	cols = append(cols, gradeColumns()...)
	return append(cols, "created_at")
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	app := &models.Application{}
	dest := []any{&app.ID, &app.StudentName, &app.PhoneNumber, &app.StudentID, &app.University,
		&app.CourseID, &app.Faculty, &app.MajorSubject}
	for i := range app.Grades {
		dest = append(dest, &app.Grades[i].Subject, &app.Grades[i].Grade)
	}
	dest = append(dest, &app.CreatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return app, nil
}

// CreateApplication inserts an application with all eight subject/grade pairs
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *models.Application) (int64, error) {
	cols := []string{"student_name", "phone_number", "student_id", "university",
		"course_id", "faculty", "major_subject"}
	cols = append(cols, gradeColumns()...)

	values := []any{app.StudentName, app.PhoneNumber, app.StudentID, app.University,
		app.CourseID, app.Faculty, app.MajorSubject}
	for _, g := range app.Grades {
		values = append(values, g.Subject, g.Grade)
	}

	sql, args, err := r.sb.Insert("applications").
		Columns(cols...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("studentID", app.StudentID).Msg("Error creating application")
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return id, nil
}

// GetApplicationByID retrieves an application by id
func (r *ApplicationRepository) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns()...).
		From("applications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error getting application by ID: %w", err)
	}

	return app, nil
}

// GetAllApplications retrieves all applications, newest first
func (r *ApplicationRepository) GetAllApplications(ctx context.Context) ([]*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns()...).
		From("applications").
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return apps, nil
}
