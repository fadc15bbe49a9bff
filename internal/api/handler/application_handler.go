package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbase/recruiting-api/internal/core/ports"
)

// ApplicationHandler handles application routes.
type ApplicationHandler struct {
	applicationService ports.ApplicationService
}

func NewApplicationHandler(applicationService ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

type createApplicationRequest struct {
	UserID       int64           `json:"user_id" validate:"required"`
	JobID        int64           `json:"job_id"  validate:"required"`
	ResumeURL    string          `json:"resume_url"`
	CoverLetter  string          `json:"cover_letter"`
	AIParsedData json.RawMessage `json:"ai_parsed_data"`
}

// Create submits an application. A candidate may apply to a given job once;
// a second submission is a conflict.
//
// @Summary      Submit an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      createApplicationRequest  true  "Application details"
// @Success      201   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	app, err := h.applicationService.Create(c.Request().Context(), ports.CreateApplicationInput{
		UserID:       req.UserID,
		JobID:        req.JobID,
		ResumeURL:    req.ResumeURL,
		CoverLetter:  req.CoverLetter,
		AIParsedData: req.AIParsedData,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, app)
}

// ListByJob returns a job's applications joined with candidate display fields.
func (h *ApplicationHandler) ListByJob(c echo.Context) error {
	jobID, err := pathID(c, "job_id")
	if err != nil {
		return errorJSON(c, err)
	}

	apps, err := h.applicationService.ListByJob(c.Request().Context(), jobID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

// ListByUser returns a candidate's applications joined with job display fields.
func (h *ApplicationHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return errorJSON(c, err)
	}

	apps, err := h.applicationService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}
