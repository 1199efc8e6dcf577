package review

import (
	"errors"
	"sync"
	"time"

	reviewRepo "eventra/database/repository/review"
	userRepo "eventra/database/repository/user"
	vendorRepo "eventra/database/repository/vendor"
	"eventra/models"
	"eventra/utils"

	"github.com/google/uuid"
)

// DefaultPageSize bounds review listings when the client gives no limit.
const DefaultPageSize = 20

// ReviewService accepts reviews and keeps each vendor's rating aggregate in
// step with its review set.
type ReviewService interface {
	Create(customerID string, input models.ReviewInput) (*models.Review, error)
	ListByVendor(vendorID, cursor string, limit int) (*models.ReviewPage, error)
}

// DefaultReviewService is the production implementation. Writes for the same
// vendor are serialised through a per-vendor lock so the stored aggregate
// always reflects the full review set.
type DefaultReviewService struct {
	Repo       reviewRepo.ReviewRepository
	VendorRepo vendorRepo.VendorRepository
	UserRepo   userRepo.UserRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (s *DefaultReviewService) vendorLock(vendorID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks == nil {
		s.locks = map[string]*sync.Mutex{}
	}
	lock, ok := s.locks[vendorID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[vendorID] = lock
	}
	return lock
}

// Create stores a review and recomputes the vendor's aggregate from scratch.
// A customer may review a given vendor at most once.
func (s *DefaultReviewService) Create(customerID string, input models.ReviewInput) (*models.Review, error) {
	if input.VendorID == "" {
		return nil, utils.ValidationError("vendorId is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.ValidationError("rating must be between 1 and 5")
	}

	profile, err := s.VendorRepo.GetByID(input.VendorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NotFoundError("vendor not found")
	}

	lock := s.vendorLock(input.VendorID)
	lock.Lock()
	defer lock.Unlock()

	exists, err := s.Repo.ExistsForPair(customerID, input.VendorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ConflictError("you have already reviewed this vendor")
	}

	rev := &models.Review{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		VendorID:   input.VendorID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := s.Repo.Create(rev); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicate) {
			return nil, utils.ConflictError("you have already reviewed this vendor")
		}
		return nil, err
	}

	if err := s.recomputeAggregate(input.VendorID); err != nil {
		return nil, err
	}
	return rev, nil
}

// recomputeAggregate derives the rating pair from the full review set and
// writes it onto the vendor profile. Callers hold the vendor lock.
func (s *DefaultReviewService) recomputeAggregate(vendorID string) error {
	agg, err := s.Repo.AggregateForVendor(vendorID)
	if err != nil {
		return err
	}
	if agg == nil {
		agg = &models.RatingAggregate{}
	}
	return s.VendorRepo.UpdateRating(vendorID, agg.Rating, agg.NumReviews)
}

// ListByVendor pages through a vendor's reviews newest first with customer
// names attached. The cursor is the createdAt of the last review seen.
func (s *DefaultReviewService) ListByVendor(vendorID, cursor string, limit int) (*models.ReviewPage, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	var before time.Time
	if cursor != "" {
		parsed, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, utils.ValidationError("invalid cursor")
		}
		before = parsed
	}

	reviews, err := s.Repo.ListByVendor(vendorID, before, limit)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]string, 0, len(reviews))
	seen := map[string]bool{}
	for _, r := range reviews {
		if !seen[r.CustomerID] {
			seen[r.CustomerID] = true
			customerIDs = append(customerIDs, r.CustomerID)
		}
	}

	names := map[string]string{}
	if len(customerIDs) > 0 {
		users, err := s.UserRepo.GetByIDs(customerIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			names[u.ID] = u.Name
		}
	}

	page := &models.ReviewPage{Reviews: make([]models.ReviewWithCustomer, 0, len(reviews))}
	for _, r := range reviews {
		page.Reviews = append(page.Reviews, models.ReviewWithCustomer{
			Review:       r,
			CustomerName: names[r.CustomerID],
		})
	}
	if len(reviews) == limit {
		page.NextCursor = reviews[len(reviews)-1].CreatedAt.Format(time.RFC3339Nano)
	}
	return page, nil
}
