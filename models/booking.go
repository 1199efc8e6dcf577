package models

import "time"

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
	BookingCompleted = "completed"
)

// Booking records a customer's date-scoped request to engage a vendor.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	CustomerID string    `bson:"customer" json:"customer"`
	VendorID   string    `bson:"vendor" json:"vendor"`
	Date       time.Time `bson:"date" json:"date"`
	Status     string    `bson:"status" json:"status"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingInput is the payload for POST /api/bookings.
type BookingInput struct {
	VendorID string    `json:"vendorId" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Notes    string    `json:"notes"`
}

// CustomerBooking is a booking as seen by the customer who created it: the
// full vendor profile plus the vendor's account name/email are attached.
type CustomerBooking struct {
	Booking `bson:",inline"`
	Vendor  VendorWithOwner `json:"vendor"`
}

// VendorBooking is a booking as seen by the vendor it targets: the customer's
// name/email are attached.
type VendorBooking struct {
	Booking  `bson:",inline"`
	Customer UserSummary `json:"customer"`
}

// AdminBooking is the admin listing shape with both parties summarised.
type AdminBooking struct {
	Booking  `bson:",inline"`
	Customer UserSummary   `json:"customer"`
	Vendor   VendorSummary `json:"vendor"`
}

// BookingList is the role-dependent result of GET /api/bookings. Exactly one
// of the two slices is populated, indicated by Role.
type BookingList struct {
	Role     string            `json:"role"`
	Customer []CustomerBooking `json:"bookings,omitempty"`
	Vendor   []VendorBooking   `json:"vendorBookings,omitempty"`
}
