package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "psaops/internal/adapter/http/dto/request"
	response "psaops/internal/adapter/http/dto/response"
	"psaops/internal/usecase"
	"psaops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRowPayload = pkg.NewDomainErrorSimple("INVALID_ROW_INPUT", "Invalid row payload", http.StatusBadRequest)
	errInvalidWeekKey    = pkg.NewDomainErrorSimple("INVALID_WEEK_KEY", "Week key must be a yyyy-mm-dd date", http.StatusBadRequest)
)

// EstimateRowsHandler handles HTTP requests for the estimate line-item grid.

type EstimateRowsHandler struct {
	editor usecase.IEstimateEditor
}

func NewEstimateRowsHandler(editor usecase.IEstimateEditor) *EstimateRowsHandler {
	return &EstimateRowsHandler{editor: editor}
}

// UpdateRowField applies a partial edit to a row slot and returns the row as
// the engine now sees it, including its save state.
func (h *EstimateRowsHandler) UpdateRowField(c *gin.Context) {
	estimateID, rowKey := c.Param("estimate_id"), c.Param("row_key")

	var payload request.RowFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRowPayload.HTTPStatus, errInvalidRowPayload.ToHTTPError())
		return
	}
	patch, err := payload.ResolvePatch()
	if err != nil {
		c.JSON(errInvalidRowPayload.HTTPStatus, errInvalidRowPayload.ToHTTPError())
		return
	}

	snap, err := h.editor.UpdateRowField(c.Request.Context(), estimateID, rowKey, patch)
	if err != nil {
		log.Printf("[rows][handler] field update failed estimate_id=%s row=%s err=%v", estimateID, rowKey, err)
		appErr := mapRowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRowSnapshot(snap))
}

// SetWeekHours sets the hours for one calendar week of a row.
func (h *EstimateRowsHandler) SetWeekHours(c *gin.Context) {
	estimateID, rowKey := c.Param("estimate_id"), c.Param("row_key")
	weekKey := strings.TrimSpace(c.Param("week_start"))
	if _, err := usecase.ParseWeekKey(weekKey); err != nil {
		c.JSON(errInvalidWeekKey.HTTPStatus, errInvalidWeekKey.ToHTTPError())
		return
	}

	hours, appErr := bindHours(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	snap, err := h.editor.SetRowHours(c.Request.Context(), estimateID, rowKey, weekKey, hours)
	if err != nil {
		log.Printf("[rows][handler] hours update failed estimate_id=%s row=%s week=%s err=%v", estimateID, rowKey, weekKey, err)
		mapped := mapRowError(err)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRowSnapshot(snap))
}

// FillRowHours writes the same hours value into every week the row's date
// range touches.
func (h *EstimateRowsHandler) FillRowHours(c *gin.Context) {
	estimateID, rowKey := c.Param("estimate_id"), c.Param("row_key")

	hours, appErr := bindHours(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	snap, err := h.editor.FillRowHours(c.Request.Context(), estimateID, rowKey, hours)
	if err != nil {
		log.Printf("[rows][handler] fill failed estimate_id=%s row=%s err=%v", estimateID, rowKey, err)
		mapped := mapRowError(err)
		c.JSON(mapped.HTTPStatus, mapped.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRowSnapshot(snap))
}

// DeleteRow removes a row's persisted record, if any, and resets the slot.
func (h *EstimateRowsHandler) DeleteRow(c *gin.Context) {
	estimateID, rowKey := c.Param("estimate_id"), c.Param("row_key")

	if err := h.editor.DeleteRow(c.Request.Context(), estimateID, rowKey); err != nil {
		log.Printf("[rows][handler] delete failed estimate_id=%s row=%s err=%v", estimateID, rowKey, err)
		appErr := mapRowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetEstimateDetail returns the reconciled grid for an estimate.
func (h *EstimateRowsHandler) GetEstimateDetail(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	detail, err := h.editor.Detail(c.Request.Context(), estimateID)
	if err != nil {
		log.Printf("[rows][handler] detail failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapRowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEditorDetail(detail))
}

// GetEstimateTotals returns estimate-wide totals only.
func (h *EstimateRowsHandler) GetEstimateTotals(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	totals, err := h.editor.Totals(c.Request.Context(), estimateID)
	if err != nil {
		log.Printf("[rows][handler] totals failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapRowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTotals(totals))
}

func bindHours(c *gin.Context) (float64, *pkg.AppError) {
	var payload request.WeekHoursRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		return 0, errInvalidRowPayload
	}
	hours, err := payload.ResolveHours()
	if err != nil {
		return 0, errInvalidRowPayload
	}
	return hours, nil
}

func mapRowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingRole):
		return pkg.NewDomainErrorSimple("MISSING_ROLE", "Row has no role selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNegativeHours):
		return pkg.NewDomainErrorSimple("NEGATIVE_HOURS", "Hours cannot be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
