package reviewRepo

import (
	"errors"
	"time"

	"eventra/models"
)

// ErrDuplicate signals a second review for the same (customer, vendor) pair.
var ErrDuplicate = errors.New("review already exists for this customer and vendor")

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review record. Returns ErrDuplicate when the
	// (customer, vendor) pair already has a review.
	Create(review *models.Review) error
	// ExistsForPair reports whether the customer has already reviewed the
	// vendor.
	ExistsForPair(customerID, vendorID string) (bool, error)
	// ListByVendor retrieves a page of a vendor's reviews, newest first.
	// before is the exclusive upper bound on creation time; zero means from
	// the top. limit <= 0 means no limit.
	ListByVendor(vendorID string, before time.Time, limit int) ([]models.Review, error)
	// AggregateForVendor recomputes the review count and mean rating over
	// the full review set for the vendor.
	AggregateForVendor(vendorID string) (*models.RatingAggregate, error)
}
