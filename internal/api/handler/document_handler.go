package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbase/recruiting-api/internal/core/ports"
)

// DocumentHandler handles the two export conveniences.
type DocumentHandler struct {
	documentService ports.DocumentService
}

func NewDocumentHandler(documentService ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// CandidateProfilePDF streams the anonymized profile for a candidate.
//
// @Summary      Export an anonymized candidate profile
// @Tags         documents
// @Produce      application/pdf
// @Param        id  path  int  true  "Candidate id"
// @Success      200 {file} binary
// @Failure      404 {object} errorResponse
// @Router       /api/v1/users/{id}/profile/pdf [get]
func (h *DocumentHandler) CandidateProfilePDF(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	data, err := h.documentService.CandidateProfilePDF(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=candidate_profile_%d.pdf`, id))
	return c.Blob(http.StatusOK, "application/pdf", data)
}

// JobFeedXML streams a portal-specific feed for a posting.
//
// @Summary      Export a job feed
// @Tags         documents
// @Produce      application/xml
// @Param        id      path  int     true  "Job id"
// @Param        portal  path  string  true  "Portal key (indeed, linkedin, ziprecruiter, generic)"
// @Success      200 {file} binary
// @Failure      400 {object} errorResponse
// @Failure      404 {object} errorResponse
// @Router       /api/v1/jobs/{id}/feed/{portal} [get]
func (h *DocumentHandler) JobFeedXML(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}
	portal := c.Param("portal")

	data, err := h.documentService.JobFeedXML(c.Request().Context(), id, portal)
	if err != nil {
		return errorJSON(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=job_%d_%s.xml`, id, portal))
	return c.Blob(http.StatusOK, "application/xml", data)
}
