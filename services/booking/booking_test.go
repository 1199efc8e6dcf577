package booking

import (
	"sync"
	"testing"
	"time"

	"eventra/models"
	"eventra/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	order    []string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	copied := *b
	r.bookings[b.ID] = &copied
	r.order = append(r.order, b.ID)
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, id := range r.order {
		if r.bookings[id].CustomerID == customerID {
			out = append(out, *r.bookings[id])
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByVendor(vendorID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, id := range r.order {
		if r.bookings[id].VendorID == vendorID {
			out = append(out, *r.bookings[id])
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0, len(r.order))
	// Newest first.
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, *r.bookings[r.order[i]])
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[id].Status = status
	return nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bookings, id)
	return nil
}

type fakeVendorRepo struct {
	profiles map[string]*models.VendorProfile
}

func (r *fakeVendorRepo) Upsert(p *models.VendorProfile) (*models.VendorProfile, error) {
	return p, nil
}

func (r *fakeVendorRepo) GetByID(id string) (*models.VendorProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeVendorRepo) GetByUserID(userID string) (*models.VendorProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeVendorRepo) GetByIDs(ids []string) ([]models.VendorProfile, error) {
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
func (r *fakeVendorRepo) GetAll() ([]models.VendorProfile, error) { return nil, nil }
func (r *fakeVendorRepo) UpdateRating(string, float64, int) error { return nil }
func (r *fakeVendorRepo) SetVerified(string, bool) error          { return nil }

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

func (r *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }
func (r *fakeUserRepo) UpdateSet(string, bson.M) error { return nil }
func (r *fakeUserRepo) Delete(string) error            { return nil }

type fakeScheduler struct {
	scheduled []models.ReminderPayload
}

func (s *fakeScheduler) ScheduleBookingReminder(p models.ReminderPayload) error {
	s.scheduled = append(s.scheduled, p)
	return nil
}

func newBookingService() (*DefaultBookingService, *fakeBookingRepo, *fakeScheduler) {
	repo := newFakeBookingRepo()
	scheduler := &fakeScheduler{}
	svc := &DefaultBookingService{
		Repo: repo,
		VendorRepo: &fakeVendorRepo{profiles: map[string]*models.VendorProfile{
			"v1": {ID: "v1", UserID: "vendor-user", BusinessName: "The Grand Palace"},
			"v2": {ID: "v2", UserID: "other-vendor-user", BusinessName: "Royal Gardens"},
		}},
		UserRepo: &fakeUserRepo{users: map[string]*models.User{
			"cust-1":      {ID: "cust-1", Name: "Amit Patel", Email: "amit@example.com"},
			"vendor-user": {ID: "vendor-user", Name: "Priya Singh", Email: "priya@venue.com"},
		}},
		Reminders: scheduler,
	}
	return svc, repo, scheduler
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingRejected, true},
		{models.BookingPending, models.BookingCompleted, false},
		{models.BookingConfirmed, models.BookingCompleted, true},
		{models.BookingConfirmed, models.BookingRejected, false},
		{models.BookingConfirmed, models.BookingPending, false},
		{models.BookingRejected, models.BookingConfirmed, false},
		{models.BookingRejected, models.BookingPending, false},
		{models.BookingCompleted, models.BookingConfirmed, false},
		{models.BookingPending, models.BookingPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCreateBookingStartsPending(t *testing.T) {
	svc, _, _ := newBookingService()

	bk, err := svc.Create("cust-1", models.BookingInput{VendorID: "v1", Date: time.Now().Add(48 * time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, bk.Status)
	assert.Equal(t, "cust-1", bk.CustomerID)
	assert.Equal(t, "v1", bk.VendorID)
}

func TestCreateBookingUnknownVendor(t *testing.T) {
	svc, _, _ := newBookingService()

	_, err := svc.Create("cust-1", models.BookingInput{VendorID: "missing", Date: time.Now()})
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindNotFound, apiErr.Kind)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	svc, _, scheduler := newBookingService()

	bk, err := svc.Create("cust-1", models.BookingInput{VendorID: "v1", Date: time.Now().Add(72 * time.Hour)})
	require.NoError(t, err)

	confirmed, err := svc.UpdateStatus("vendor-user", bk.ID, models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)

	// Confirmation schedules the pre-event reminder.
	require.Len(t, scheduler.scheduled, 1)
	assert.Equal(t, bk.ID, scheduler.scheduled[0].BookingID)
	assert.Equal(t, "The Grand Palace", scheduler.scheduled[0].VendorName)

	completed, err := svc.UpdateStatus("vendor-user", bk.ID, models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, completed.Status)

	// Completed is terminal.
	_, err = svc.UpdateStatus("vendor-user", bk.ID, models.BookingConfirmed)
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindValidation, apiErr.Kind)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newBookingService()

	bk, err := svc.Create("cust-1", models.BookingInput{VendorID: "v1", Date: time.Now().Add(48 * time.Hour)})
	require.NoError(t, err)

	_, err = svc.UpdateStatus("vendor-user", bk.ID, "cancelled")
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindValidation, apiErr.Kind)
}

func TestUpdateStatusWrongVendor(t *testing.T) {
	svc, repo, _ := newBookingService()

	bk, err := svc.Create("cust-1", models.BookingInput{VendorID: "v1", Date: time.Now().Add(48 * time.Hour)})
	require.NoError(t, err)

	_, err = svc.UpdateStatus("other-vendor-user", bk.ID, models.BookingConfirmed)
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindUnauthorized, apiErr.Kind)

	// The booking is untouched.
	stored, err := repo.GetByID(bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, stored.Status)
}

func TestUpdateStatusMissingBooking(t *testing.T) {
	svc, _, _ := newBookingService()

	_, err := svc.UpdateStatus("vendor-user", "missing", models.BookingConfirmed)
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindNotFound, apiErr.Kind)
}

func TestListForUserShapes(t *testing.T) {
	svc, _, _ := newBookingService()

	_, err := svc.Create("cust-1", models.BookingInput{VendorID: "v1", Date: time.Now().Add(48 * time.Hour)})
	require.NoError(t, err)

	// Customer view carries the vendor with owner attached.
	customerList, err := svc.ListForUser("cust-1", models.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, customerList.Role)
	require.Len(t, customerList.Customer, 1)
	assert.Empty(t, customerList.Vendor)
	assert.Equal(t, "The Grand Palace", customerList.Customer[0].Vendor.BusinessName)
	assert.Equal(t, "Priya Singh", customerList.Customer[0].Vendor.Owner.Name)

	// Vendor view carries the customer summary.
	vendorList, err := svc.ListForUser("vendor-user", models.RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, models.RoleVendor, vendorList.Role)
	require.Len(t, vendorList.Vendor, 1)
	assert.Empty(t, vendorList.Customer)
	assert.Equal(t, "Amit Patel", vendorList.Vendor[0].Customer.Name)
}

func TestListForUserVendorWithoutProfile(t *testing.T) {
	svc, _, _ := newBookingService()

	_, err := svc.ListForUser("no-profile-user", models.RoleVendor)
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindNotFound, apiErr.Kind)
}

func TestAdminListAttachesBothParties(t *testing.T) {
	svc, _, _ := newBookingService()

	first, err := svc.Create("cust-1", models.BookingInput{VendorID: "v1", Date: time.Now().Add(48 * time.Hour)})
	require.NoError(t, err)
	second, err := svc.Create("cust-1", models.BookingInput{VendorID: "v2", Date: time.Now().Add(96 * time.Hour)})
	require.NoError(t, err)

	listed, err := svc.AdminList()
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Newest first.
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
	assert.Equal(t, "Amit Patel", listed[0].Customer.Name)
	assert.Equal(t, "Royal Gardens", listed[0].Vendor.BusinessName)
}

func TestAdminDelete(t *testing.T) {
	svc, repo, _ := newBookingService()

	bk, err := svc.Create("cust-1", models.BookingInput{VendorID: "v1", Date: time.Now().Add(48 * time.Hour)})
	require.NoError(t, err)

	require.NoError(t, svc.AdminDelete(bk.ID))
	stored, err := repo.GetByID(bk.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	err = svc.AdminDelete(bk.ID)
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindNotFound, apiErr.Kind)
}
