package serviceRepo

import "eventra/models"

// ServiceRepository defines methods for service catalog data access.
type ServiceRepository interface {
	// Create inserts a new service record.
	Create(service *models.Service) error
	// GetByID retrieves a service by its unique ID. Returns nil when no
	// service matches.
	GetByID(id string) (*models.Service, error)
	// ListByVendor retrieves all services offered by a vendor profile.
	ListByVendor(vendorID string) ([]models.Service, error)
	// Delete removes a service record by its ID.
	Delete(id string) error
}
