package bookingRepo

import "eventra/models"

// BookingRepository defines methods for booking ledger data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns nil when no
	// booking matches.
	GetByID(id string) (*models.Booking, error)
	// ListByCustomer retrieves a customer's bookings, ascending event date.
	ListByCustomer(customerID string) ([]models.Booking, error)
	// ListByVendor retrieves a vendor profile's bookings, ascending event date.
	ListByVendor(vendorID string) ([]models.Booking, error)
	// ListAll retrieves every booking, newest first.
	ListAll() ([]models.Booking, error)
	// UpdateStatus overwrites the status field.
	UpdateStatus(id string, status string) error
	// Delete removes a booking record by its ID.
	Delete(id string) error
}
