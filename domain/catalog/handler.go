package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves catalogs as JSON
type Handler struct {
	svc *Service
}

// NewHandler creates a new catalog handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Get loads a catalog and returns its displayed subset
// GET /api/catalog/:kind?service=&seed=&shown=&photo=
func (h *Handler) Get(c echo.Context) error {
	req, err := ParseQuery(Kind(c.Param("kind")), c.QueryParams())
	if err != nil {
		return err
	}

	view, err := h.svc.Load(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, NewResponse(view))
}
