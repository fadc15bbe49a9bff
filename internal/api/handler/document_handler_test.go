package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/talentbase/recruiting-api/internal/core/domain"
)

type stubDocumentService struct {
	profileFn func(ctx context.Context, userID int64) ([]byte, error)
	feedFn    func(ctx context.Context, jobID int64, portal string) ([]byte, error)
}

func (s *stubDocumentService) CandidateProfilePDF(ctx context.Context, userID int64) ([]byte, error) {
	return s.profileFn(ctx, userID)
}
func (s *stubDocumentService) JobFeedXML(ctx context.Context, jobID int64, portal string) ([]byte, error) {
	return s.feedFn(ctx, jobID, portal)
}

func TestDocumentHandler_CandidateProfilePDF_Success(t *testing.T) {
	stub := &stubDocumentService{
		profileFn: func(ctx context.Context, userID int64) ([]byte, error) {
			if userID != 7 {
				t.Fatalf("unexpected user id: %d", userID)
			}
			return []byte("%PDF-1.4 fake"), nil
		},
	}
	h := NewDocumentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/7/profile/pdf", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.CandidateProfilePDF(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "candidate_profile_7.pdf") {
		t.Fatalf("unexpected disposition: %q", cd)
	}
}

func TestDocumentHandler_CandidateProfilePDF_NotFound(t *testing.T) {
	stub := &stubDocumentService{
		profileFn: func(ctx context.Context, userID int64) ([]byte, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewDocumentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/99/profile/pdf", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	_ = h.CandidateProfilePDF(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDocumentHandler_JobFeedXML_Success(t *testing.T) {
	stub := &stubDocumentService{
		feedFn: func(ctx context.Context, jobID int64, portal string) ([]byte, error) {
			if jobID != 5 || portal != "indeed" {
				t.Fatalf("unexpected args: %d %q", jobID, portal)
			}
			return []byte("<source/>"), nil
		},
	}
	h := NewDocumentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/5/feed/indeed", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "portal")
	c.SetParamValues("5", "indeed")

	if err := h.JobFeedXML(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/xml" {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "job_5_indeed.xml") {
		t.Fatalf("unexpected disposition: %q", cd)
	}
}

func TestDocumentHandler_JobFeedXML_UnknownPortal(t *testing.T) {
	stub := &stubDocumentService{
		feedFn: func(ctx context.Context, jobID int64, portal string) ([]byte, error) {
			return nil, domain.ErrUnsupportedPortal
		},
	}
	h := NewDocumentHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/5/feed/monster", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "portal")
	c.SetParamValues("5", "monster")

	_ = h.JobFeedXML(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
