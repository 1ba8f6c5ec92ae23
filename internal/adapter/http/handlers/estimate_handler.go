package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/havncube/billing-service/internal/adapter/http/dto/request"
	"github.com/havncube/billing-service/internal/adapter/http/dto/response"
	"github.com/havncube/billing-service/internal/usecase"
	"github.com/havncube/billing-service/pkg"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler handles HTTP requests for estimates: CRUD plus on-demand
// PDF generation.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary  Create an estimate
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    estimate body request.EstimateRequest true "Estimate payload"
// @Success  201 {object} response.EstimateResponse
// @Router   /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(created))
}

// ListEstimates godoc
// @Summary  List estimates, newest first
// @Tags     estimates
// @Produce  json
// @Success  200 {array} response.EstimateResponse
// @Router   /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

// GetEstimate godoc
// @Summary  Get an estimate by id
// @Tags     estimates
// @Produce  json
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// UpdateEstimate godoc
// @Summary  Replace an estimate
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    id path string true "Estimate ID"
// @Param    estimate body request.EstimateRequest true "Full replacement payload"
// @Success  200 {object} response.EstimateResponse
// @Router   /estimates/{id} [put]
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

// DeleteEstimate godoc
// @Summary  Delete an estimate
// @Tags     estimates
// @Produce  json
// @Param    id path string true "Estimate ID"
// @Success  200 {object} map[string]string
// @Router   /estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Estimate deleted successfully"})
}

// GeneratePDF godoc
// @Summary  Generate the printable PDF for an estimate
// @Tags     estimates
// @Produce  application/pdf
// @Param    id path string true "Estimate ID"
// @Success  200 {file} binary
// @Router   /estimates/{id}/pdf [post]
func (h *EstimateHandler) GeneratePDF(c *gin.Context) {
	filename, doc, err := h.usecase.GeneratePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrNoLineItems):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRendererFailed):
		return pkg.NewDomainError("PDF_GENERATION_FAILED", "Error generating PDF", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
