package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moitfe/portal-api/internal/api/metrics"
	"github.com/moitfe/portal-api/internal/api/middleware"
	"github.com/moitfe/portal-api/internal/core/domain"
	"github.com/moitfe/portal-api/internal/core/ports"
)

// RecordHandler serves the data-entry and review-table endpoints.
type RecordHandler struct {
	records ports.RecordService
}

func NewRecordHandler(records ports.RecordService) *RecordHandler {
	return &RecordHandler{records: records}
}

type recordListResponse struct {
	Data any `json:"data"`
}

// List handles GET /v1/records/:category. Collections are served from the
// hydrated session state, newest-first.
func (h *RecordHandler) List(c echo.Context) error {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return err
	}

	var data any
	switch category {
	case domain.CategoryForest:
		data = h.records.ForestRecords()
	case domain.CategoryIndustry:
		data = h.records.IndustryRecords()
	case domain.CategoryCommerce:
		data = h.records.CommerceRecords()
	}
	return c.JSON(http.StatusOK, recordListResponse{Data: data})
}

// CreateForest handles POST /v1/records/forest.
func (h *RecordHandler) CreateForest(c echo.Context) error {
	var in ports.CreateForestInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	rec, err := h.records.CreateForest(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(string(domain.CategoryForest)).Inc()
	return c.JSON(http.StatusCreated, rec)
}

// CreateIndustry handles POST /v1/records/industry.
func (h *RecordHandler) CreateIndustry(c echo.Context) error {
	var in ports.CreateIndustryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	rec, err := h.records.CreateIndustry(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(string(domain.CategoryIndustry)).Inc()
	return c.JSON(http.StatusCreated, rec)
}

// CreateCommerce handles POST /v1/records/commerce.
func (h *RecordHandler) CreateCommerce(c echo.Context) error {
	var in ports.CreateCommerceInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	rec, err := h.records.CreateCommerce(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}
	metrics.RecordsCreatedTotal.WithLabelValues(string(domain.CategoryCommerce)).Inc()
	return c.JSON(http.StatusCreated, rec)
}

type updateStatusRequest struct {
	Status domain.ReviewStatus `json:"status" validate:"required,oneof=Approved Rejected"`
}

type updateStatusResponse struct {
	ID     string              `json:"id"`
	Status domain.ReviewStatus `json:"status"`
}

// UpdateStatus handles PATCH /v1/records/:category/:id/status. Role and
// lifecycle checks live in the service; an unauthorized or out-of-order
// transition never reaches storage.
func (h *RecordHandler) UpdateStatus(c echo.Context) error {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.records.SetStatus(c.Request().Context(), actor, category, id, req.Status); err != nil {
		return err
	}

	metrics.ReviewDecisionsTotal.WithLabelValues(string(category), string(req.Status)).Inc()
	return c.JSON(http.StatusOK, updateStatusResponse{ID: id, Status: req.Status})
}
