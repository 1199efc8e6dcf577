package review

import (
	"fmt"
	"sync"
	"testing"
	"time"

	reviewRepo "eventra/database/repository/review"
	"eventra/models"
	"eventra/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []models.Review
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reviews {
		if existing.CustomerID == review.CustomerID && existing.VendorID == review.VendorID {
			return reviewRepo.ErrDuplicate
		}
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) ExistsForPair(customerID, vendorID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reviews {
		if existing.CustomerID == customerID && existing.VendorID == vendorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) ListByVendor(vendorID string, before time.Time, limit int) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.VendorID != vendorID {
			continue
		}
		if !before.IsZero() && !rev.CreatedAt.Before(before) {
			continue
		}
		out = append(out, rev)
	}
	// Newest first.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeReviewRepo) AggregateForVendor(vendorID string) (*models.RatingAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, count int
	for _, rev := range r.reviews {
		if rev.VendorID == vendorID {
			sum += rev.Rating
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	return &models.RatingAggregate{
		NumReviews: count,
		Rating:     float64(sum) / float64(count),
	}, nil
}

type fakeVendorRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.VendorProfile
}

func newFakeVendorRepo(ids ...string) *fakeVendorRepo {
	profiles := make(map[string]*models.VendorProfile)
	for _, id := range ids {
		profiles[id] = &models.VendorProfile{ID: id, BusinessName: "Vendor " + id}
	}
	return &fakeVendorRepo{profiles: profiles}
}

func (r *fakeVendorRepo) Upsert(profile *models.VendorProfile) (*models.VendorProfile, error) {
	return profile, nil
}

func (r *fakeVendorRepo) GetByID(id string) (*models.VendorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeVendorRepo) GetByUserID(userID string) (*models.VendorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeVendorRepo) GetByIDs(ids []string) ([]models.VendorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.VendorProfile
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeVendorRepo) Search(models.VendorSearchFilter) ([]models.VendorProfile, error) {
	return nil, nil
}

func (r *fakeVendorRepo) GetAll() ([]models.VendorProfile, error) {
	return nil, nil
}

func (r *fakeVendorRepo) UpdateRating(id string, rating float64, numReviews int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return fmt.Errorf("vendor %s not found", id)
	}
	p.Rating = rating
	p.NumReviews = numReviews
	return nil
}

func (r *fakeVendorRepo) SetVerified(id string, verified bool) error {
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(*models.User) error { return nil }

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }

func (r *fakeUserRepo) GetByIDs(ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error)  { return nil, nil }
func (r *fakeUserRepo) UpdateSet(string, bson.M) error  { return nil }
func (r *fakeUserRepo) Delete(string) error             { return nil }

func newService(vendorIDs ...string) (*DefaultReviewService, *fakeReviewRepo, *fakeVendorRepo) {
	reviews := &fakeReviewRepo{}
	vendors := newFakeVendorRepo(vendorIDs...)
	svc := &DefaultReviewService{
		Repo:       reviews,
		VendorRepo: vendors,
		UserRepo:   &fakeUserRepo{users: map[string]*models.User{}},
	}
	return svc, reviews, vendors
}

func TestCreateReviewUpdatesAggregate(t *testing.T) {
	svc, _, vendors := newService("v1")

	ratings := []int{5, 4, 5, 2, 4, 4}
	for i, rating := range ratings {
		_, err := svc.Create(fmt.Sprintf("c%d", i), models.ReviewInput{VendorID: "v1", Rating: rating})
		require.NoError(t, err)
	}

	profile, err := vendors.GetByID("v1")
	require.NoError(t, err)
	assert.Equal(t, len(ratings), profile.NumReviews)
	assert.InDelta(t, 4.0, profile.Rating, 0.0001)
}

func TestCreateReviewConcurrentSameVendor(t *testing.T) {
	svc, _, vendors := newService("v1")

	const writers = 40
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := svc.Create(fmt.Sprintf("c%d", i), models.ReviewInput{VendorID: "v1", Rating: 1 + i%5})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	profile, err := vendors.GetByID("v1")
	require.NoError(t, err)
	assert.Equal(t, writers, profile.NumReviews)

	var sum int
	for i := 0; i < writers; i++ {
		sum += 1 + i%5
	}
	assert.InDelta(t, float64(sum)/float64(writers), profile.Rating, 0.0001)
}

func TestCreateReviewDuplicateConflict(t *testing.T) {
	svc, _, vendors := newService("v1")

	_, err := svc.Create("c1", models.ReviewInput{VendorID: "v1", Rating: 5})
	require.NoError(t, err)

	_, err = svc.Create("c1", models.ReviewInput{VendorID: "v1", Rating: 1})
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindConflict, apiErr.Kind)

	// The rejected write must not disturb the aggregate.
	profile, err := vendors.GetByID("v1")
	require.NoError(t, err)
	assert.Equal(t, 1, profile.NumReviews)
	assert.InDelta(t, 5.0, profile.Rating, 0.0001)
}

func TestCreateReviewVendorNotFound(t *testing.T) {
	svc, _, _ := newService("v1")

	_, err := svc.Create("c1", models.ReviewInput{VendorID: "missing", Rating: 5})
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindNotFound, apiErr.Kind)
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	svc, _, _ := newService("v1")

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create("c1", models.ReviewInput{VendorID: "v1", Rating: rating})
		require.Error(t, err)
		apiErr, ok := err.(*utils.APIError)
		require.True(t, ok)
		assert.Equal(t, utils.KindValidation, apiErr.Kind)
	}
}

func TestListByVendorPaginates(t *testing.T) {
	svc, reviews, _ := newService("v1")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		reviews.reviews = append(reviews.reviews, models.Review{
			ID:         fmt.Sprintf("r%d", i),
			CustomerID: fmt.Sprintf("c%d", i),
			VendorID:   "v1",
			Rating:     4,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}

	page, err := svc.ListByVendor("v1", "", 2)
	require.NoError(t, err)
	require.Len(t, page.Reviews, 2)
	assert.Equal(t, "r4", page.Reviews[0].ID)
	assert.Equal(t, "r3", page.Reviews[1].ID)
	require.NotEmpty(t, page.NextCursor)

	page2, err := svc.ListByVendor("v1", page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page2.Reviews, 2)
	assert.Equal(t, "r2", page2.Reviews[0].ID)
	assert.Equal(t, "r1", page2.Reviews[1].ID)
}

func TestListByVendorBadCursor(t *testing.T) {
	svc, _, _ := newService("v1")

	_, err := svc.ListByVendor("v1", "not-a-timestamp", 10)
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindValidation, apiErr.Kind)
}
