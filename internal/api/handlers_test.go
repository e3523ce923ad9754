package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/constants"
	"field-ministry/campo/internal/errs"
	"field-ministry/campo/internal/models/dtos/requests"
	"field-ministry/campo/internal/models/dtos/responses"
	models "field-ministry/campo/internal/models/gorm"
)

// Unimplemented methods of the embedded interfaces panic if reached.

type mockTerritoryService struct {
	TerritoryService
	getFunc    func(ctx context.Context, id string) (*models.Territory, error)
	createFunc func(ctx context.Context, req *requests.CreateTerritoryReq) (*models.Territory, error)
	updateFunc func(ctx context.Context, id string, req *requests.UpdateTerritoryReq) (*models.Territory, error)
}

func (m *mockTerritoryService) Get(ctx context.Context, id string) (*models.Territory, error) {
	return m.getFunc(ctx, id)
}

func (m *mockTerritoryService) Create(ctx context.Context, req *requests.CreateTerritoryReq) (*models.Territory, error) {
	return m.createFunc(ctx, req)
}

func (m *mockTerritoryService) Update(ctx context.Context, id string, req *requests.UpdateTerritoryReq) (*models.Territory, error) {
	return m.updateFunc(ctx, id, req)
}

type mockPreachingDayService struct {
	PreachingDayService
	listFunc                func(ctx context.Context, start, end *time.Time) ([]models.PreachingDay, error)
	todayFunc               func(ctx context.Context) (*models.PreachingDay, error)
	createParticipationFunc func(ctx context.Context, req *requests.CreateParticipationReq) (*models.Participation, error)
}

func (m *mockPreachingDayService) Location() *time.Location { return time.UTC }

func (m *mockPreachingDayService) List(ctx context.Context, start, end *time.Time) ([]models.PreachingDay, error) {
	return m.listFunc(ctx, start, end)
}

func (m *mockPreachingDayService) Today(ctx context.Context) (*models.PreachingDay, error) {
	return m.todayFunc(ctx)
}

func (m *mockPreachingDayService) CreateParticipation(ctx context.Context, req *requests.CreateParticipationReq) (*models.Participation, error) {
	return m.createParticipationFunc(ctx, req)
}

func withClaims(req *http.Request, userID string, role constants.UserRole) *http.Request {
	claims := &auth.SessionClaims{UserUUID: userID, RoleValue: role}
	return req.WithContext(auth.SetUserClaims(req.Context(), claims))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) responses.ErrorResponse {
	t.Helper()
	var body responses.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func TestCreateTerritoryHandler_Created(t *testing.T) {
	svc := &mockTerritoryService{
		createFunc: func(ctx context.Context, req *requests.CreateTerritoryReq) (*models.Territory, error) {
			return &models.Territory{ID: "t1", Name: req.Name, IsActive: true}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/territories", jsonBody(t, map[string]string{"name": "Centro"}))
	rr := httptest.NewRecorder()
	CreateTerritoryHandler(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var got models.Territory
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Equal(t, "t1", got.ID)
	require.Equal(t, "Centro", got.Name)
}

func TestCreateTerritoryHandler_ValidationError(t *testing.T) {
	svc := &mockTerritoryService{}

	req := httptest.NewRequest(http.MethodPost, "/api/territories", jsonBody(t, map[string]string{"description": "sem nome"}))
	rr := httptest.NewRecorder()
	CreateTerritoryHandler(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeError(t, rr)
	require.Equal(t, "Invalid data", body.Message)
	require.Len(t, body.Errors, 1)
	require.Equal(t, "name", body.Errors[0].Field)
}

func TestCreateTerritoryHandler_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/territories", bytes.NewReader([]byte("{")))
	rr := httptest.NewRecorder()
	CreateTerritoryHandler(&mockTerritoryService{}).ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateTerritoryHandler_Conflict(t *testing.T) {
	svc := &mockTerritoryService{
		createFunc: func(ctx context.Context, req *requests.CreateTerritoryReq) (*models.Territory, error) {
			return nil, errs.ErrAlreadyExists
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/territories", jsonBody(t, map[string]string{"name": "Centro"}))
	rr := httptest.NewRecorder()
	CreateTerritoryHandler(svc).ServeHTTP(rr, req)
	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestUpdateTerritoryHandler_NotFound(t *testing.T) {
	svc := &mockTerritoryService{
		updateFunc: func(ctx context.Context, id string, req *requests.UpdateTerritoryReq) (*models.Territory, error) {
			require.Equal(t, "missing", id)
			return nil, errs.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/territories/missing", jsonBody(t, map[string]string{"name": "Novo"}))
	req = withURLParam(req, "id", "missing")
	rr := httptest.NewRecorder()
	UpdateTerritoryHandler(svc).ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetTerritoryHandler_InternalError(t *testing.T) {
	svc := &mockTerritoryService{
		getFunc: func(ctx context.Context, id string) (*models.Territory, error) {
			return nil, context.DeadlineExceeded
		},
	}

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/territories/t1", nil), "id", "t1")
	rr := httptest.NewRecorder()
	GetTerritoryHandler(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "Failed to fetch territory", decodeError(t, rr).Message)
}

func TestCreateParticipationHandler_Policy(t *testing.T) {
	created := 0
	svc := &mockPreachingDayService{
		createParticipationFunc: func(ctx context.Context, req *requests.CreateParticipationReq) (*models.Participation, error) {
			created++
			return &models.Participation{ID: "p1", UserID: req.UserID, PreachingDayID: req.PreachingDayID}, nil
		},
	}
	body := map[string]string{"userId": "u2", "preachingDayId": "d1"}

	cases := []struct {
		name   string
		caller string
		role   constants.UserRole
		want   int
	}{
		{"member for someone else", "u1", constants.RoleMember, http.StatusForbidden},
		{"member for self", "u2", constants.RoleMember, http.StatusCreated},
		{"leader for someone else", "l1", constants.RoleLeader, http.StatusCreated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/participations", jsonBody(t, body))
			rr := httptest.NewRecorder()
			CreateParticipationHandler(svc).ServeHTTP(rr, withClaims(req, tc.caller, tc.role))
			require.Equal(t, tc.want, rr.Code)
		})
	}
	require.Equal(t, 2, created)
}

func TestCreateParticipationHandler_ValidationBeforePolicy(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/participations", jsonBody(t, map[string]string{"userId": "u1"}))
	rr := httptest.NewRecorder()
	CreateParticipationHandler(&mockPreachingDayService{}).ServeHTTP(rr, withClaims(req, "u9", constants.RoleMember))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListPreachingDaysHandler_DateRange(t *testing.T) {
	var gotStart, gotEnd *time.Time
	svc := &mockPreachingDayService{
		listFunc: func(ctx context.Context, start, end *time.Time) ([]models.PreachingDay, error) {
			gotStart, gotEnd = start, end
			return []models.PreachingDay{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/preaching-days?startDate=2024-03-01&endDate=2024-03-31", nil)
	rr := httptest.NewRecorder()
	ListPreachingDaysHandler(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *gotStart)
	require.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), *gotEnd)

	req = httptest.NewRequest(http.MethodGet, "/api/preaching-days?startDate=2024-03-01", nil)
	rr = httptest.NewRecorder()
	ListPreachingDaysHandler(svc).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Nil(t, gotStart)
	require.Nil(t, gotEnd)

	req = httptest.NewRequest(http.MethodGet, "/api/preaching-days?startDate=yesterday&endDate=2024-03-31", nil)
	rr = httptest.NewRecorder()
	ListPreachingDaysHandler(svc).ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "startDate", decodeError(t, rr).Errors[0].Field)
}

func TestTodayPreachingDayHandler_NullWhenNone(t *testing.T) {
	svc := &mockPreachingDayService{
		todayFunc: func(ctx context.Context) (*models.PreachingDay, error) { return nil, nil },
	}

	rr := httptest.NewRecorder()
	TodayPreachingDayHandler(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/preaching-days/today", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, "null", rr.Body.String())
}
