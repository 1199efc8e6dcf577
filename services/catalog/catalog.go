package catalog

import (
	serviceRepo "eventra/database/repository/service"
	vendorRepo "eventra/database/repository/vendor"
	"eventra/models"
	"eventra/utils"

	"github.com/google/uuid"
)

// CatalogService manages a vendor's priced offerings.
type CatalogService interface {
	AddService(userID string, input models.ServiceInput) (*models.Service, error)
	ListByVendor(vendorID string) ([]models.Service, error)
	DeleteService(userID, serviceID string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo       serviceRepo.ServiceRepository
	VendorRepo vendorRepo.VendorRepository
}

// AddService creates an offering under the caller's vendor profile.
func (s *DefaultCatalogService) AddService(userID string, input models.ServiceInput) (*models.Service, error) {
	if input.Name == "" {
		return nil, utils.ValidationError("service name is required")
	}
	if input.Price < 0 {
		return nil, utils.ValidationError("price must be non-negative")
	}

	profile, err := s.VendorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NotFoundError("vendor profile not found")
	}

	service := &models.Service{
		ID:          uuid.New().String(),
		VendorID:    profile.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
	}
	if err := s.Repo.Create(service); err != nil {
		return nil, err
	}
	return service, nil
}

// ListByVendor lists a vendor's offerings. Public.
func (s *DefaultCatalogService) ListByVendor(vendorID string) ([]models.Service, error) {
	return s.Repo.ListByVendor(vendorID)
}

// DeleteService removes an offering. Only the owning vendor may delete it.
func (s *DefaultCatalogService) DeleteService(userID, serviceID string) error {
	service, err := s.Repo.GetByID(serviceID)
	if err != nil {
		return err
	}
	if service == nil {
		return utils.NotFoundError("service not found")
	}

	profile, err := s.VendorRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if profile == nil || profile.ID != service.VendorID {
		return utils.UnauthorizedError("user not authorized")
	}

	return s.Repo.Delete(serviceID)
}
