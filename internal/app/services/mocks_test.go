package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/repositories"
	"github.com/yigit/careerguide/internal/db"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id int64, update *models.ProfileUpdate) (bool, error) {
	args := m.Called(ctx, id, update)
	return args.Bool(0), args.Error(1)
}

type mockInstitutionRepo struct{ mock.Mock }

func (m *mockInstitutionRepo) CreateInstitution(ctx context.Context, inst *models.Institution) (*models.Institution, error) {
	args := m.Called(ctx, inst)
	i, _ := args.Get(0).(*models.Institution)
	return i, args.Error(1)
}

func (m *mockInstitutionRepo) GetAllInstitutions(ctx context.Context) ([]*models.Institution, error) {
	args := m.Called(ctx)
	i, _ := args.Get(0).([]*models.Institution)
	return i, args.Error(1)
}

func (m *mockInstitutionRepo) GetUniversities(ctx context.Context) ([]*models.University, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]*models.University)
	return u, args.Error(1)
}

func (m *mockInstitutionRepo) DeleteInstitution(ctx context.Context, id int64) (*models.Institution, error) {
	args := m.Called(ctx, id)
	i, _ := args.Get(0).(*models.Institution)
	return i, args.Error(1)
}

type mockFacultyRepo struct{ mock.Mock }

func (m *mockFacultyRepo) CreateFaculty(ctx context.Context, f *models.Faculty) (*models.Faculty, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).(*models.Faculty)
	return out, args.Error(1)
}

func (m *mockFacultyRepo) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*models.Faculty)
	return out, args.Error(1)
}

type mockCourseRepo struct{ mock.Mock }

func (m *mockCourseRepo) CreateCourse(ctx context.Context, c *models.Course) (*models.Course, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*models.Course)
	return out, args.Error(1)
}

func (m *mockCourseRepo) GetCourseListings(ctx context.Context) ([]*models.CourseListing, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*models.CourseListing)
	return out, args.Error(1)
}

type mockApplicationRepo struct{ mock.Mock }

func (m *mockApplicationRepo) CreateApplication(ctx context.Context, app *models.Application) (int64, error) {
	args := m.Called(ctx, app)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockApplicationRepo) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*models.Application)
	return out, args.Error(1)
}

func (m *mockApplicationRepo) GetAllApplications(ctx context.Context) ([]*models.Application, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*models.Application)
	return out, args.Error(1)
}

func (m *mockApplicationRepo) WithTx(pgx.Tx) repositories.IApplicationRepository { return m }

type mockAdmissionRepo struct{ mock.Mock }

func (m *mockAdmissionRepo) CreateAdmission(ctx context.Context, adm *models.Admission) (bool, error) {
	args := m.Called(ctx, adm)
	return args.Bool(0), args.Error(1)
}

func (m *mockAdmissionRepo) GetAllAdmissions(ctx context.Context) ([]*models.Admission, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*models.Admission)
	return out, args.Error(1)
}

func (m *mockAdmissionRepo) WithTx(pgx.Tx) repositories.IAdmissionRepository { return m }

type mockStorage struct{ mock.Mock }

func (m *mockStorage) SaveFile(ctx context.Context, fh *multipart.FileHeader, subPath string) (string, error) {
	args := m.Called(ctx, fh, subPath)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) DeleteFile(ctx context.Context, storedPath string) error {
	return m.Called(ctx, storedPath).Error(0)
}

// fakeTransactor runs fn without a real transaction and records the outcome
type fakeTransactor struct {
	calls      int
	rolledBack bool
}

func (f *fakeTransactor) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.calls++
	err := fn(ctx, nil)
	f.rolledBack = err != nil
	return err
}

// memoryStore is an in-process cache.Store
type memoryStore struct {
	data map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	return s.data[key], nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.data[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

// newFileHeader builds a multipart file part the way net/http parses it
func newFileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
