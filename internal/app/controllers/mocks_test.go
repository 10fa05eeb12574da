package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/careerguide/internal/app/models"
	"github.com/yigit/careerguide/internal/app/models/dto"
	"github.com/yigit/careerguide/internal/app/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginUser, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*dto.LoginUser)
	return u, args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]*models.User)
	return u, args.Error(1)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

type mockInstitutionService struct{ mock.Mock }

func (m *mockInstitutionService) GetAllInstitutions(ctx context.Context) ([]*models.Institution, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*models.Institution)
	return out, args.Error(1)
}

func (m *mockInstitutionService) GetUniversities(ctx context.Context) ([]*models.University, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*models.University)
	return out, args.Error(1)
}

func (m *mockInstitutionService) CreateInstitution(ctx context.Context, req *dto.CreateInstitutionRequest) (*models.Institution, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*models.Institution)
	return out, args.Error(1)
}

func (m *mockInstitutionService) DeleteInstitution(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCourseService struct{ mock.Mock }

func (m *mockCourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*models.Course)
	return out, args.Error(1)
}

func (m *mockCourseService) GetCourseListings(ctx context.Context) ([]*models.CourseListing, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*models.CourseListing)
	return out, args.Error(1)
}

type mockApplicationService struct{ mock.Mock }

func (m *mockApplicationService) SubmitApplication(ctx context.Context, req *dto.SubmitApplicationRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockApplicationService) GetAllApplications(ctx context.Context) ([]*models.Application, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*models.Application)
	return out, args.Error(1)
}

type mockAdmissionService struct{ mock.Mock }

func (m *mockAdmissionService) PublishAdmissions(ctx context.Context, ids []int64) (*services.PublishResult, error) {
	args := m.Called(ctx, ids)
	out, _ := args.Get(0).(*services.PublishResult)
	return out, args.Error(1)
}

func (m *mockAdmissionService) GetAllAdmissions(ctx context.Context) ([]*models.Admission, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*models.Admission)
	return out, args.Error(1)
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type formFile struct {
	field, name, contentType string
	content                  []byte
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
