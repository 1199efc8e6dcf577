package models

import "time"

// ReminderPayload is the asynq task body for booking reminders.
type ReminderPayload struct {
	BookingID  string    `json:"bookingId"`
	CustomerID string    `json:"customerId"`
	VendorName string    `json:"vendorName"`
	EventDate  time.Time `json:"eventDate"`
}
