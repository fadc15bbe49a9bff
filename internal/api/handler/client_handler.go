package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbase/recruiting-api/internal/core/ports"
)

// ClientHandler handles hiring-company routes.
type ClientHandler struct {
	clientService ports.ClientService
}

func NewClientHandler(clientService ports.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

type createClientRequest struct {
	Company       string `json:"company" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
}

// Create registers a hiring company.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return errorJSON(c, err)
	}

	client, err := h.clientService.Create(c.Request().Context(), ports.CreateClientInput{
		Company:       req.Company,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, client)
}

// List returns all clients, newest first, each with its derived jobs_count.
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clientService.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, clients)
}
