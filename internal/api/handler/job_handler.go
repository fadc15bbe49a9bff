package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbase/recruiting-api/internal/core/ports"
)

// JobHandler handles posting routes.
type JobHandler struct {
	jobService ports.JobService
}

func NewJobHandler(jobService ports.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

type createJobRequest struct {
	Title       string `json:"title"      validate:"required"`
	Department  string `json:"department" validate:"required"`
	Description string `json:"description"`
	// Requirements accepts a list of strings or a single comma-delimited
	// string; anything else normalizes to an empty list.
	Requirements any    `json:"requirements"`
	Status       string `json:"status"`
	CreatedBy    string `json:"created_by"`
	ClientID     *int64 `json:"client_id"`
}

type updateJobRequest struct {
	Title        *string `json:"title"`
	Department   *string `json:"department"`
	Description  *string `json:"description"`
	Requirements any     `json:"requirements"`
	Status       *string `json:"status"`
	ClientID     *int64  `json:"client_id"`
}

// Create adds a posting.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, err)
	}

	job, err := h.jobService.Create(c.Request().Context(), ports.CreateJobInput{
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       req.Status,
		CreatedBy:    req.CreatedBy,
		ClientID:     req.ClientID,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, job)
}

// List returns all postings, newest first.
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.jobService.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get returns one posting by id.
func (h *JobHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	job, err := h.jobService.Get(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, job)
}

// Update applies a partial update; absent fields keep their stored values.
//
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  domain.Job
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	job, err := h.jobService.Update(c.Request().Context(), id, ports.UpdateJobInput{
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       req.Status,
		ClientID:     req.ClientID,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, job)
}

// Delete removes a posting by id.
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	if err := h.jobService.Delete(c.Request().Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, deleteResponse{Message: "job deleted", ID: id})
}
