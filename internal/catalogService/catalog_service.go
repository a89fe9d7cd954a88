package catalog

import (
	"context"
	"fmt"
	"time"

	model "grain-market/internal/models"
	"grain-market/internal/repository"
	"grain-market/utils"
)

// CatalogService serves the public storefront: grain listing, purchase
// orders and contact form intake
type CatalogService struct {
	store repository.CatalogStore
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(store repository.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// ListGrains returns all active catalog entries
func (s *CatalogService) ListGrains(ctx context.Context) ([]model.Grain, error) {
	grains, err := s.store.FindActiveGrains(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list grains: %w", err)
	}
	return grains, nil
}

// OrderParams describes a storefront purchase order
type OrderParams struct {
	GrainType     string
	GrainID       string
	Quantity      float64
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Comment       string
}

// SubmitOrder records a purchase order
func (s *CatalogService) SubmitOrder(ctx context.Context, params OrderParams) (model.Order, error) {
	order := model.Order{
		ID:            utils.GenerateID(),
		GrainType:     params.GrainType,
		GrainID:       params.GrainID,
		Quantity:      params.Quantity,
		CustomerName:  params.CustomerName,
		CustomerPhone: params.CustomerPhone,
		CustomerEmail: params.CustomerEmail,
		Comment:       params.Comment,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.InsertOrder(ctx, order); err != nil {
		return model.Order{}, fmt.Errorf("service: failed to submit order: %w", err)
	}
	return order, nil
}

// ContactParams describes a contact form submission
type ContactParams struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// SubmitContact records a contact form submission
func (s *CatalogService) SubmitContact(ctx context.Context, params ContactParams) (model.Contact, error) {
	contact := model.Contact{
		ID:        utils.GenerateID(),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Message:   params.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.InsertContact(ctx, contact); err != nil {
		return model.Contact{}, fmt.Errorf("service: failed to submit contact: %w", err)
	}
	return contact, nil
}
