package models

import "time"

// Vendor categories surfaced by the frontend filters.
var VendorCategories = []string{"Photographer", "Venue", "Makeup Artist", "Decorator", "Caterer"}

// VendorProfile is a vendor's bookable listing. One profile per vendor user.
// Rating and NumReviews are derived fields owned by the review aggregator;
// the profile upsert path must never write them.
type VendorProfile struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"user" json:"user"`
	BusinessName string    `bson:"business_name" json:"businessName"`
	City         string    `bson:"city" json:"city"`
	Category     string    `bson:"category" json:"category"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	PriceRange   string    `bson:"price_range,omitempty" json:"priceRange,omitempty"`
	Images       []string  `bson:"images,omitempty" json:"images,omitempty"`
	Rating       float64   `bson:"rating" json:"rating"`
	NumReviews   int       `bson:"num_reviews" json:"numReviews"`
	IsVerified   bool      `bson:"is_verified" json:"isVerified"`
	ContactEmail string    `bson:"contact_email,omitempty" json:"contactEmail,omitempty"`
	ContactPhone string    `bson:"contact_phone,omitempty" json:"contactPhone,omitempty"`
	Website      string    `bson:"website,omitempty" json:"website,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// VendorProfileInput is the upsert payload for POST /api/vendors.
type VendorProfileInput struct {
	BusinessName string   `json:"businessName" binding:"required"`
	City         string   `json:"city" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Description  string   `json:"description"`
	PriceRange   string   `json:"priceRange"`
	Images       []string `json:"images"`
	ContactEmail string   `json:"contactEmail"`
	ContactPhone string   `json:"contactPhone"`
	Website      string   `json:"website"`
}

// VendorSearchFilter narrows the public vendor listing.
type VendorSearchFilter struct {
	City       string
	Category   string
	PriceRange string
	Search     string
}

// VendorWithOwner pairs a profile with its owning user's public fields.
type VendorWithOwner struct {
	VendorProfile `bson:",inline"`
	Owner         UserSummary `json:"owner"`
}

// VendorSummary is the short form attached to admin booking listings.
type VendorSummary struct {
	ID           string `bson:"id" json:"id"`
	BusinessName string `bson:"business_name" json:"businessName"`
	City         string `bson:"city" json:"city"`
	Category     string `bson:"category" json:"category"`
}

// Summary strips a profile down to the fields admin listings need.
func (v *VendorProfile) Summary() VendorSummary {
	return VendorSummary{
		ID:           v.ID,
		BusinessName: v.BusinessName,
		City:         v.City,
		Category:     v.Category,
	}
}
