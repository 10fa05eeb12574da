package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/careerguide/internal/app/models"
	appRepos "github.com/yigit/careerguide/internal/app/repositories"
)

// demoInstitution describes one institution of the demo catalog
type demoInstitution struct {
	institution appModels.Institution
	faculties   map[string][]string // faculty name -> course names
}

var demoCatalog = []demoInstitution{
	{
		institution: appModels.Institution{Name: "National University of Lesotho", NumberOfStudents: 12000, NumberOfDepartments: 40, NumberOfCourses: 120},
		faculties: map[string][]string{
			"Faculty of Science and Technology": {"BSc Computer Science", "BSc Mathematics"},
			"Faculty of Humanities":             {"BA English", "BA History"},
		},
	},
	{
		institution: appModels.Institution{Name: "Limkokwing University of Creative Technology", NumberOfStudents: 4000, NumberOfDepartments: 12, NumberOfCourses: 35},
		faculties: map[string][]string{
			"Faculty of Information and Communication Technology": {"BSc Software Engineering with Multimedia"},
			"Faculty of Design Innovation":                        {"BA Graphic Design"},
		},
	},
	{
		institution: appModels.Institution{Name: "Botho University", NumberOfStudents: 2500, NumberOfDepartments: 8, NumberOfCourses: 20},
		faculties: map[string][]string{
			"Faculty of Business and Accounting": {"BCom Accounting"},
		},
	},
}

// CreateDefaultData creates a demo catalog of institutions, faculties and
// courses. It does nothing when any institution already exists.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	existing, err := repos.InstitutionRepository.GetAllInstitutions(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing institutions: %w", err)
	}
	if len(existing) > 0 {
		lgr.Info().Int("institutions", len(existing)).Msg("Catalog already populated, skipping seed")
		return nil
	}

	lgr.Info().Msg("Creating demo catalog (institutions/faculties/courses)...")
	var finalErr error // collect errors without stopping the process

	for _, demo := range demoCatalog {
		inst := demo.institution
		created, err := repos.InstitutionRepository.CreateInstitution(ctx, &inst)
		if err != nil {
			lgr.Error().Err(err).Str("institution", inst.Name).Msg("Error creating institution")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for facultyName, courses := range demo.faculties {
			faculty, err := repos.FacultyRepository.CreateFaculty(ctx, &appModels.Faculty{Name: facultyName, InstitutionID: created.ID})
			if err != nil {
				lgr.Error().Err(err).Str("faculty", facultyName).Msg("Error creating faculty")
				finalErr = errors.Join(finalErr, err)
				continue
			}

			for _, courseName := range courses {
				_, err := repos.CourseRepository.CreateCourse(ctx, &appModels.Course{
					Name:          courseName,
					FacultyID:     faculty.ID,
					InstitutionID: created.ID,
				})
				if err != nil {
					lgr.Error().Err(err).Str("course", courseName).Msg("Error creating course")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Int("institutions", len(demoCatalog)).Msg("Demo catalog created")
	}
	return finalErr
}
