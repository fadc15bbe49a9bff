package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
)

type stubApplicationService struct {
	createFn     func(ctx context.Context, input ports.CreateApplicationInput) (*domain.Application, error)
	listByJobFn  func(ctx context.Context, jobID int64) ([]domain.JobApplication, error)
	listByUserFn func(ctx context.Context, userID int64) ([]domain.UserApplication, error)
}

func (s *stubApplicationService) Create(ctx context.Context, input ports.CreateApplicationInput) (*domain.Application, error) {
	return s.createFn(ctx, input)
}
func (s *stubApplicationService) ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	return s.listByJobFn(ctx, jobID)
}
func (s *stubApplicationService) ListByUser(ctx context.Context, userID int64) ([]domain.UserApplication, error) {
	return s.listByUserFn(ctx, userID)
}

func TestApplicationHandler_Create_Success(t *testing.T) {
	stub := &stubApplicationService{
		createFn: func(ctx context.Context, input ports.CreateApplicationInput) (*domain.Application, error) {
			if input.UserID != 1 || input.JobID != 2 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Application{ID: 10, UserID: 1, JobID: 2, Status: "Pending"}, nil
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/v1/applications", `{"user_id":1,"job_id":2}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["status"] != "Pending" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestApplicationHandler_Create_Duplicate(t *testing.T) {
	stub := &stubApplicationService{
		createFn: func(ctx context.Context, input ports.CreateApplicationInput) (*domain.Application, error) {
			return nil, domain.ErrDuplicateApplication
		},
	}
	h := NewApplicationHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/v1/applications", `{"user_id":1,"job_id":2}`)
	_ = h.Create(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestApplicationHandler_ListByJob(t *testing.T) {
	stub := &stubApplicationService{
		listByJobFn: func(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
			if jobID != 2 {
				t.Fatalf("unexpected job id: %d", jobID)
			}
			return []domain.JobApplication{
				{Application: domain.Application{ID: 10}, ApplicantName: "Alice", ApplicantEmail: "alice@example.com"},
			}, nil
		},
	}
	h := NewApplicationHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/applications/job/2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("job_id")
	c.SetParamValues("2")

	if err := h.ListByJob(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["applicant_name"] != "Alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestApplicationHandler_ListByUser(t *testing.T) {
	stub := &stubApplicationService{
		listByUserFn: func(ctx context.Context, userID int64) ([]domain.UserApplication, error) {
			return []domain.UserApplication{
				{Application: domain.Application{ID: 11}, JobTitle: "DBA", JobDepartment: "Data"},
			}, nil
		},
	}
	h := NewApplicationHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/applications/user/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues("1")

	if err := h.ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["job_title"] != "DBA" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
