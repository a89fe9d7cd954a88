package handler

import (
	"context"
	"fmt"
	"net/http"

	catalog "grain-market/internal/catalogService"
	model "grain-market/internal/models"
	"grain-market/services/market/helpers"
	"grain-market/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	ListGrains(ctx context.Context) ([]model.Grain, error)
	SubmitOrder(ctx context.Context, params catalog.OrderParams) (model.Order, error)
	SubmitContact(ctx context.Context, params catalog.ContactParams) (model.Contact, error)
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListGrainsHandler handles GET /api/grains
func (h *CatalogHandler) ListGrainsHandler(c *gin.Context) {
	grains, err := h.service.ListGrains(c.Request.Context())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListGrainsHandler: error retrieving grains", map[string]any{"error": err.Error()})
		return
	}

	if grains == nil {
		grains = []model.Grain{}
	}
	utils.JSONResponse(c, http.StatusOK, grains, "grains retrieved successfully")
}

// CreateOrderHandler handles POST /api/orders
func (h *CatalogHandler) CreateOrderHandler(c *gin.Context) {
	var req helpers.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateOrderHandler", err)
		return
	}

	order, err := h.service.SubmitOrder(c.Request.Context(), catalog.OrderParams{
		GrainType:     req.GrainType,
		GrainID:       req.GrainID,
		Quantity:      req.Quantity,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Comment:       req.Comment,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateOrderHandler: failed to create order", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"order_id": order.ID}, "order submitted successfully")
	helpers.LogSuccess("CreateOrderHandler", "order submitted successfully", map[string]any{
		"order_id":   order.ID,
		"grain_type": order.GrainType,
	})
}

// CreateContactHandler handles POST /api/contacts
func (h *CatalogHandler) CreateContactHandler(c *gin.Context) {
	var req helpers.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateContactHandler", err)
		return
	}

	contact, err := h.service.SubmitContact(c.Request.Context(), catalog.ContactParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateContactHandler: failed to submit contact form", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"contact_id": contact.ID}, "message sent successfully")
	helpers.LogSuccess("CreateContactHandler", "contact form submitted", map[string]any{
		"contact_id": contact.ID,
	})
}
