package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbase/recruiting-api/internal/core/domain"
	"github.com/talentbase/recruiting-api/internal/core/ports"
)

// AssistHandler handles the two AI-backed conveniences.
type AssistHandler struct {
	assistService ports.AssistService
}

func NewAssistHandler(assistService ports.AssistService) *AssistHandler {
	return &AssistHandler{assistService: assistService}
}

type jobAdRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GenerateJobAd turns rough notes into a structured job advertisement.
//
// @Summary      Generate a job ad
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body      jobAdRequest  true  "Title and rough notes"
// @Success      200   {object}  ports.JobAd
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/ai/job-ad [post]
func (h *AssistHandler) GenerateJobAd(c echo.Context) error {
	var req jobAdRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	ad, err := h.assistService.GenerateJobAd(c.Request().Context(), ports.JobAdInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, ad)
}

// ExtractResume parses an uploaded PDF resume into a structured record.
//
// @Summary      Extract resume skills
// @Tags         ai
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume PDF"
// @Success      200   {object}  ports.ResumeProfile
// @Failure      400   {object}  errorResponse
// @Failure      415   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/ai/resume [post]
func (h *AssistHandler) ExtractResume(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, domain.MissingField("file"))
	}

	src, err := fh.Open()
	if err != nil {
		return errorJSON(c, domain.Invalid("could not read uploaded file"))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return errorJSON(c, domain.Invalid("could not read uploaded file"))
	}

	profile, err := h.assistService.ExtractResume(c.Request().Context(), ports.ResumeUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}
