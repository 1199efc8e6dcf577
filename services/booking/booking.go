package booking

import (
	"fmt"
	"time"

	bookingRepo "eventra/database/repository/booking"
	userRepo "eventra/database/repository/user"
	vendorRepo "eventra/database/repository/vendor"
	"eventra/models"
	"eventra/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler enqueues a reminder to fire ahead of the event date.
type ReminderScheduler interface {
	ScheduleBookingReminder(payload models.ReminderPayload) error
}

// BookingService drives the booking lifecycle.
type BookingService interface {
	Create(customerID string, input models.BookingInput) (*models.Booking, error)
	ListForUser(userID, role string) (*models.BookingList, error)
	UpdateStatus(userID, bookingID, status string) (*models.Booking, error)

	// Admin.
	AdminList() ([]models.AdminBooking, error)
	AdminDelete(bookingID string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	VendorRepo vendorRepo.VendorRepository
	UserRepo   userRepo.UserRepository
	Reminders  ReminderScheduler
}

var validStatuses = map[string]bool{
	models.BookingPending:   true,
	models.BookingConfirmed: true,
	models.BookingRejected:  true,
	models.BookingCompleted: true,
}

// transitions is the full lifecycle graph. Rejected and completed are
// terminal.
var transitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingRejected},
	models.BookingConfirmed: {models.BookingCompleted},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Create opens a pending booking against a vendor.
func (s *DefaultBookingService) Create(customerID string, input models.BookingInput) (*models.Booking, error) {
	if input.VendorID == "" {
		return nil, utils.ValidationError("vendorId is required")
	}
	if input.Date.IsZero() {
		return nil, utils.ValidationError("date is required")
	}

	profile, err := s.VendorRepo.GetByID(input.VendorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NotFoundError("vendor not found")
	}

	bk := &models.Booking{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		VendorID:   input.VendorID,
		Date:       input.Date,
		Status:     models.BookingPending,
		Notes:      input.Notes,
	}
	if err := s.Repo.Create(bk); err != nil {
		return nil, err
	}
	return bk, nil
}

// ListForUser returns the caller's bookings shaped by role. Vendors see the
// bookings against their profile with customers attached; everyone else sees
// their own bookings with vendors attached.
func (s *DefaultBookingService) ListForUser(userID, role string) (*models.BookingList, error) {
	if role == models.RoleVendor {
		return s.listForVendor(userID)
	}
	return s.listForCustomer(userID)
}

func (s *DefaultBookingService) listForVendor(userID string) (*models.BookingList, error) {
	profile, err := s.VendorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, utils.NotFoundError("there is no vendor profile for this user")
	}

	bookings, err := s.Repo.ListByVendor(profile.ID)
	if err != nil {
		return nil, err
	}

	customers, err := s.userSummaries(collectIDs(bookings, func(b models.Booking) string { return b.CustomerID }))
	if err != nil {
		return nil, err
	}

	items := make([]models.VendorBooking, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, models.VendorBooking{Booking: b, Customer: customers[b.CustomerID]})
	}
	return &models.BookingList{Role: models.RoleVendor, Vendor: items}, nil
}

func (s *DefaultBookingService) listForCustomer(userID string) (*models.BookingList, error) {
	bookings, err := s.Repo.ListByCustomer(userID)
	if err != nil {
		return nil, err
	}

	vendorIDs := collectIDs(bookings, func(b models.Booking) string { return b.VendorID })
	profiles, err := s.VendorRepo.GetByIDs(vendorIDs)
	if err != nil {
		return nil, err
	}

	owners, err := s.userSummaries(collectIDs(profiles, func(p models.VendorProfile) string { return p.UserID }))
	if err != nil {
		return nil, err
	}

	vendors := make(map[string]models.VendorWithOwner, len(profiles))
	for _, p := range profiles {
		vendors[p.ID] = models.VendorWithOwner{VendorProfile: p, Owner: owners[p.UserID]}
	}

	items := make([]models.CustomerBooking, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, models.CustomerBooking{Booking: b, Vendor: vendors[b.VendorID]})
	}
	return &models.BookingList{Role: models.RoleCustomer, Customer: items}, nil
}

// UpdateStatus moves a booking along the lifecycle graph. Only the vendor the
// booking was made against may change it.
func (s *DefaultBookingService) UpdateStatus(userID, bookingID, status string) (*models.Booking, error) {
	bk, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if bk == nil {
		return nil, utils.NotFoundError("booking not found")
	}

	profile, err := s.VendorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ID != bk.VendorID {
		return nil, utils.UnauthorizedError("user not authorized")
	}

	if !validStatuses[status] {
		return nil, utils.ValidationError("invalid booking status")
	}
	if !CanTransition(bk.Status, status) {
		return nil, utils.ValidationError(fmt.Sprintf("cannot move booking from %s to %s", bk.Status, status))
	}

	if err := s.Repo.UpdateStatus(bookingID, status); err != nil {
		return nil, err
	}
	bk.Status = status

	if status == models.BookingConfirmed {
		s.scheduleReminder(bk, profile)
	}
	return bk, nil
}

// scheduleReminder enqueues a nudge 24 hours before the event. Failure to
// enqueue never fails the confirmation.
func (s *DefaultBookingService) scheduleReminder(bk *models.Booking, profile *models.VendorProfile) {
	if s.Reminders == nil {
		return
	}
	if !bk.Date.After(time.Now().Add(24 * time.Hour)) {
		return
	}
	payload := models.ReminderPayload{
		BookingID:  bk.ID,
		CustomerID: bk.CustomerID,
		VendorName: profile.BusinessName,
		EventDate:  bk.Date,
	}
	if err := s.Reminders.ScheduleBookingReminder(payload); err != nil {
		utils.GetLogger().Warn("failed to schedule booking reminder",
			zap.String("bookingID", bk.ID), zap.Error(err))
	}
}

// AdminList returns every booking newest first with both parties attached.
func (s *DefaultBookingService) AdminList() ([]models.AdminBooking, error) {
	bookings, err := s.Repo.ListAll()
	if err != nil {
		return nil, err
	}

	customers, err := s.userSummaries(collectIDs(bookings, func(b models.Booking) string { return b.CustomerID }))
	if err != nil {
		return nil, err
	}

	profiles, err := s.VendorRepo.GetByIDs(collectIDs(bookings, func(b models.Booking) string { return b.VendorID }))
	if err != nil {
		return nil, err
	}
	vendors := make(map[string]models.VendorSummary, len(profiles))
	for _, p := range profiles {
		vendors[p.ID] = p.Summary()
	}

	items := make([]models.AdminBooking, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, models.AdminBooking{
			Booking:  b,
			Customer: customers[b.CustomerID],
			Vendor:   vendors[b.VendorID],
		})
	}
	return items, nil
}

// AdminDelete removes a booking outright.
func (s *DefaultBookingService) AdminDelete(bookingID string) error {
	bk, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if bk == nil {
		return utils.NotFoundError("booking not found")
	}
	return s.Repo.Delete(bookingID)
}

func (s *DefaultBookingService) userSummaries(ids []string) (map[string]models.UserSummary, error) {
	summaries := map[string]models.UserSummary{}
	if len(ids) == 0 {
		return summaries, nil
	}
	users, err := s.UserRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		summaries[u.ID] = u.Summary()
	}
	return summaries, nil
}

func collectIDs[T any](items []T, key func(T) string) []string {
	seen := map[string]bool{}
	ids := make([]string, 0, len(items))
	for _, item := range items {
		id := key(item)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
