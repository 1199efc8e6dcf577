package models

import "time"

// Review is a customer's one-shot rating of a vendor. At most one review may
// exist per (customer, vendor) pair; reviews are immutable once created.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	CustomerID string    `bson:"customer" json:"customer"`
	VendorID   string    `bson:"vendor" json:"vendor"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// ReviewInput is the payload for POST /api/reviews.
type ReviewInput struct {
	VendorID string `json:"vendorId" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

// ReviewWithCustomer attaches the reviewer's name for public listings.
type ReviewWithCustomer struct {
	Review       `bson:",inline"`
	CustomerName string `json:"customerName"`
}

// ReviewPage is one page of a vendor's reviews, newest first. NextCursor is
// empty on the last page.
type ReviewPage struct {
	Reviews    []ReviewWithCustomer `json:"reviews"`
	NextCursor string               `json:"nextCursor,omitempty"`
}

// RatingAggregate holds the recomputed derived fields for a vendor.
type RatingAggregate struct {
	NumReviews int     `bson:"num_reviews"`
	Rating     float64 `bson:"rating"`
}
