package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/repositories"
)

type reportFunc func(ctx context.Context, repos *repositories.Repositories, out io.Writer) error

var reports = map[string]reportFunc{
	"institutions": func(ctx context.Context, r *repositories.Repositories, out io.Writer) error {
		rows, err := r.InstitutionRepository.GetAllInstitutions(ctx)
		if err != nil {
			return err
		}
		renderInstitutions(out, rows)
		return nil
	},
	"courses": func(ctx context.Context, r *repositories.Repositories, out io.Writer) error {
		rows, err := r.CourseRepository.GetCourseListings(ctx)
		if err != nil {
			return err
		}
		renderCourses(out, rows)
		return nil
	},
	"applications": func(ctx context.Context, r *repositories.Repositories, out io.Writer) error {
		rows, err := r.ApplicationRepository.GetAllApplications(ctx)
		if err != nil {
			return err
		}
		renderApplications(out, rows)
		return nil
	},
	"admissions": func(ctx context.Context, r *repositories.Repositories, out io.Writer) error {
		rows, err := r.AdmissionRepository.GetAllAdmissions(ctx)
		if err != nil {
			return err
		}
		renderAdmissions(out, rows)
		return nil
	},
}

func availableReports() string {
	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func title(out io.Writer, text string, count int) {
	fmt.Fprintln(out, color.YellowString("\n%s (%d)", text, count))
}

func renderInstitutions(out io.Writer, rows []*models.Institution) {
	title(out, "Institutions", len(rows))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Name", "Students", "Departments", "Courses", "Logo"})
	for _, i := range rows {
		table.Append([]string{
			strconv.FormatInt(i.ID, 10),
			i.Name,
			strconv.Itoa(i.NumberOfStudents),
			strconv.Itoa(i.NumberOfDepartments),
			strconv.Itoa(i.NumberOfCourses),
			i.Logo,
		})
	}
	table.Render()
}

func renderCourses(out io.Writer, rows []*models.CourseListing) {
	title(out, "Courses", len(rows))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Course", "Faculty ID", "University"})
	for _, c := range rows {
		table.Append([]string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			strconv.FormatInt(c.FacultyID, 10),
			c.University,
		})
	}
	table.Render()
}

// gradeSummary renders the filled subject/grade pairs as "Maths:A, English:B"
func gradeSummary(grades [models.MaxSubjectGrades]models.SubjectGrade) string {
	parts := make([]string, 0, len(grades))
	for _, g := range grades {
		if g.Subject == "" && g.Grade == "" {
			continue
		}
		parts = append(parts, g.Subject+":"+g.Grade)
	}
	return strings.Join(parts, ", ")
}

func renderApplications(out io.Writer, rows []*models.Application) {
	title(out, "Applications", len(rows))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Student", "Student ID", "University", "Course ID", "Grades"})
	for _, a := range rows {
		table.Append([]string{
			strconv.FormatInt(a.ID, 10),
			a.StudentName,
			a.StudentID,
			a.University,
			strconv.FormatInt(a.CourseID, 10),
			gradeSummary(a.Grades),
		})
	}
	table.Render()
}

func renderAdmissions(out io.Writer, rows []*models.Admission) {
	title(out, "Admissions", len(rows))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Student ID", "Course ID", "Status", "Published"})
	for _, a := range rows {
		table.Append([]string{
			strconv.FormatInt(a.ID, 10),
			a.StudentID,
			strconv.FormatInt(a.CourseID, 10),
			statusLabel(a.Status),
			a.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}

func statusLabel(status string) string {
	if status == models.AdmissionStatusAdmitted {
		return color.GreenString(status)
	}
	return status
}
