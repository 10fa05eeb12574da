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

// Foreign keys on courses
const (
	coursesFacultyFK     = "courses_faculty_id_fkey"
	coursesInstitutionFK = "courses_institution_id_fkey"
)

// ICourseRepository defines the course persistence operations
type ICourseRepository interface {
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	GetCourseListings(ctx context.Context) ([]*models.CourseListing, error)
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// CreateCourse creates a new course and returns the stored row
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "faculty_id", "institution_id").
		Values(course.Name, course.FacultyID, course.InstitutionID).
		Suffix("RETURNING id, name, faculty_id, institution_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create course query: %w", err)
	}

	created := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.Name, &created.FacultyID, &created.InstitutionID)
	if err != nil {
		if constraint, ok := dberrors.IsForeignKeyError(err); ok {
			if constraint == coursesFacultyFK {
				return nil, apperrors.ErrFacultyNotFound
			}
			return nil, apperrors.ErrInstitutionNotFound
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return created, nil
}

// GetCourseListings joins every course with its institution's name
func (r *CourseRepository) GetCourseListings(ctx context.Context) ([]*models.CourseListing, error) {
	sql, args, err := r.sb.Select("c.id", "c.name", "c.faculty_id", "c.institution_id", "i.name").
		From("courses c").
		Join("institutions i ON i.id = c.institution_id").
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course listing query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.CourseListing{}
	for rows.Next() {
		c := &models.CourseListing{Requirements: models.CourseRequirementsPlaceholder}
		if err := rows.Scan(&c.ID, &c.Name, &c.FacultyID, &c.InstitutionID, &c.University); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}
