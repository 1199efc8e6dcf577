// Seeds the database with demo accounts, vendor profiles and services.
// Existing users, vendors, services, bookings, reviews and messages are
// dropped first.
package main

import (
	"context"
	"log"
	"time"

	"eventra/config"
	"eventra/database"
	serviceRepoPkg "eventra/database/repository/service"
	userRepoPkg "eventra/database/repository/user"
	vendorRepoPkg "eventra/database/repository/vendor"
	"eventra/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type seedVendor struct {
	name    string
	email   string
	profile models.VendorProfileInput
	rating  float64
	reviews int
}

var seedVendors = []seedVendor{
	{
		name: "Rahul Sharma", email: "rahul@photography.com",
		profile: models.VendorProfileInput{
			BusinessName: "Royal Wedding Photography", City: "Mumbai", Category: "Photographer",
			Description: "Capturing your special moments with an Indian touch. Specialists in Candid and Traditional photography.",
			PriceRange:  "₹50,000 - ₹2,00,000",
			ContactEmail: "contact@royalphoto.com", ContactPhone: "9876543210",
		},
		rating: 4.8, reviews: 12,
	},
	{
		name: "Priya Singh", email: "priya@venue.com",
		profile: models.VendorProfileInput{
			BusinessName: "The Grand Palace", City: "Delhi", Category: "Venue",
			Description: "A luxurious venue for your big fat Indian wedding. Capacity: 1000 guests.",
			PriceRange:  "₹5,00,000 - ₹15,00,000",
			ContactEmail: "info@grandpalace.com", ContactPhone: "9123456780",
		},
		rating: 4.5, reviews: 8,
	},
	{
		name: "Meera Desai", email: "meera@makeupstudio.com",
		profile: models.VendorProfileInput{
			BusinessName: "Meera's Bridal Makeup Studio", City: "Bangalore", Category: "Makeup Artist",
			Description: "Professional bridal makeup with 10+ years of experience. Specializing in HD makeup, airbrush, and traditional looks.",
			PriceRange:  "₹25,000 - ₹80,000",
			ContactEmail: "contact@meeramakeup.com", ContactPhone: "9988776655",
		},
		rating: 4.9, reviews: 25,
	},
	{
		name: "Arjun Mehta", email: "arjun@decorators.com",
		profile: models.VendorProfileInput{
			BusinessName: "Arjun Event Decorators", City: "Pune", Category: "Decorator",
			Description: "Creating magical wedding experiences with stunning floral arrangements and thematic decorations. From traditional to contemporary designs.",
			PriceRange:  "₹1,50,000 - ₹8,00,000",
			ContactEmail: "events@arjundecor.com", ContactPhone: "9876501234",
		},
		rating: 4.7, reviews: 18,
	},
	{
		name: "Kavita Iyer", email: "kavita@catering.com",
		profile: models.VendorProfileInput{
			BusinessName: "Kavita's Royal Catering", City: "Hyderabad", Category: "Caterer",
			Description: "Authentic Indian cuisine with a modern twist. Specializing in North Indian, South Indian, and fusion menus. Serving 100-2000 guests.",
			PriceRange:  "₹800 - ₹2,500 per plate",
			ContactEmail: "bookings@kavitacatering.com", ContactPhone: "9123450987",
		},
		rating: 4.6, reviews: 32,
	},
	{
		name: "Vikram Reddy", email: "vikram@snapmoments.com",
		profile: models.VendorProfileInput{
			BusinessName: "Snap Moments Photography", City: "Chennai", Category: "Photographer",
			Description: "Award-winning wedding photographers specializing in destination weddings and cinematic storytelling.",
			PriceRange:  "₹75,000 - ₹3,00,000",
			ContactEmail: "info@snapmoments.com", ContactPhone: "9445566778",
		},
		rating: 4.7, reviews: 15,
	},
	{
		name: "Anjali Kapoor", email: "anjali@dreamframes.com",
		profile: models.VendorProfileInput{
			BusinessName: "Dream Frames Studio", City: "Jaipur", Category: "Photographer",
			Description: "Capturing royal Rajasthani weddings with traditional and contemporary styles. 8+ years experience.",
			PriceRange:  "₹60,000 - ₹2,50,000",
			ContactEmail: "contact@dreamframes.com", ContactPhone: "9887766554",
		},
		rating: 4.6, reviews: 20,
	},
	{
		name: "Rajesh Kumar", email: "rajesh@royalgardens.com",
		profile: models.VendorProfileInput{
			BusinessName: "Royal Gardens & Banquets", City: "Kolkata", Category: "Venue",
			Description: "Elegant outdoor and indoor venues with lush gardens. Perfect for traditional Bengali weddings. Capacity: 800 guests.",
			PriceRange:  "₹4,00,000 - ₹12,00,000",
			ContactEmail: "bookings@royalgardens.com", ContactPhone: "9334455667",
		},
		rating: 4.4, reviews: 12,
	},
	{
		name: "Sanjay Malhotra", email: "sanjay@heritagepalace.com",
		profile: models.VendorProfileInput{
			BusinessName: "Heritage Palace Hotel", City: "Udaipur", Category: "Venue",
			Description: "Luxurious heritage property with lake views. Ideal for destination weddings. Capacity: 500 guests.",
			PriceRange:  "₹8,00,000 - ₹25,00,000",
			ContactEmail: "events@heritagepalace.com", ContactPhone: "9223344556",
		},
		rating: 4.9, reviews: 28,
	},
	{
		name: "Pooja Sharma", email: "pooja@glamstudio.com",
		profile: models.VendorProfileInput{
			BusinessName: "Glam & Glow Makeup Studio", City: "Mumbai", Category: "Makeup Artist",
			Description: "Celebrity makeup artist specializing in bridal makeovers. MAC certified with 12+ years experience.",
			PriceRange:  "₹35,000 - ₹1,20,000",
			ContactEmail: "book@glamstudio.com", ContactPhone: "9876123456",
		},
		rating: 4.8, reviews: 35,
	},
	{
		name: "Nisha Patel", email: "nisha@beautybliss.com",
		profile: models.VendorProfileInput{
			BusinessName: "Beauty Bliss by Nisha", City: "Ahmedabad", Category: "Makeup Artist",
			Description: "Natural and elegant bridal makeup. Specializing in Gujarati brides with traditional and modern looks.",
			PriceRange:  "₹20,000 - ₹65,000",
			ContactEmail: "nisha@beautybliss.com", ContactPhone: "9665544332",
		},
		rating: 4.5, reviews: 18,
	},
	{
		name: "Karan Singh", email: "karan@dreamdecor.com",
		profile: models.VendorProfileInput{
			BusinessName: "Dream Decor & Events", City: "Gurgaon", Category: "Decorator",
			Description: "Luxury wedding decorators with expertise in floral mandaps, stage setups, and lighting. 500+ weddings completed.",
			PriceRange:  "₹2,00,000 - ₹10,00,000",
			ContactEmail: "info@dreamdecor.com", ContactPhone: "9811223344",
		},
		rating: 4.8, reviews: 42,
	},
	{
		name: "Deepak Joshi", email: "deepak@floralmagic.com",
		profile: models.VendorProfileInput{
			BusinessName: "Floral Magic Decorators", City: "Lucknow", Category: "Decorator",
			Description: "Specialists in traditional North Indian wedding decorations with fresh flowers and elegant draping.",
			PriceRange:  "₹1,00,000 - ₹6,00,000",
			ContactEmail: "contact@floralmagic.com", ContactPhone: "9556677889",
		},
		rating: 4.4, reviews: 22,
	},
	{
		name: "Ramesh Gupta", email: "ramesh@tastytreats.com",
		profile: models.VendorProfileInput{
			BusinessName: "Tasty Treats Catering", City: "Delhi", Category: "Caterer",
			Description: "Multi-cuisine catering with live counters. Specializing in North Indian, Chinese, and Continental. Serving 50-1500 guests.",
			PriceRange:  "₹900 - ₹3,000 per plate",
			ContactEmail: "orders@tastytreats.com", ContactPhone: "9112233445",
		},
		rating: 4.7, reviews: 38,
	},
	{
		name: "Lakshmi Iyer", email: "lakshmi@southspice.com",
		profile: models.VendorProfileInput{
			BusinessName: "South Spice Caterers", City: "Bangalore", Category: "Caterer",
			Description: "Authentic South Indian wedding catering. Traditional banana leaf meals and modern fusion menus available.",
			PriceRange:  "₹700 - ₹2,000 per plate",
			ContactEmail: "info@southspice.com", ContactPhone: "9445566778",
		},
		rating: 4.6, reviews: 27,
	},
}

func main() {
	config.LoadConfig()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Clear existing data.
	for _, name := range []string{"users", "vendors", "services", "bookings", "reviews", "messages", "conversations"} {
		if err := database.DB().Collection(name).Drop(ctx); err != nil {
			log.Fatalf("seed: failed to drop %s: %v", name, err)
		}
	}
	log.Println("Data Cleared")

	users := userRepoPkg.NewMongoUserRepo()
	vendors := vendorRepoPkg.NewMongoVendorRepo()
	services := serviceRepoPkg.NewMongoServiceRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed: failed to hash password: %v", err)
	}
	passwordHash := string(hash)

	createUser := func(name, email, role string) *models.User {
		u := &models.User{
			ID:           uuid.New().String(),
			Name:         name,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         role,
		}
		if err := users.Create(u); err != nil {
			log.Fatalf("seed: failed to create user %s: %v", email, err)
		}
		return u
	}

	createUser("Admin User", "admin@example.com", models.RoleAdmin)
	createUser("Amit Patel", "amit@example.com", models.RoleCustomer)

	profileIDs := make([]string, 0, len(seedVendors))
	for _, sv := range seedVendors {
		owner := createUser(sv.name, sv.email, models.RoleVendor)

		profile, err := vendors.Upsert(&models.VendorProfile{
			UserID:       owner.ID,
			BusinessName: sv.profile.BusinessName,
			City:         sv.profile.City,
			Category:     sv.profile.Category,
			Description:  sv.profile.Description,
			PriceRange:   sv.profile.PriceRange,
			ContactEmail: sv.profile.ContactEmail,
			ContactPhone: sv.profile.ContactPhone,
		})
		if err != nil {
			log.Fatalf("seed: failed to create profile for %s: %v", sv.email, err)
		}

		// Demo rating aggregates; real ones come from the review aggregator.
		if err := vendors.UpdateRating(profile.ID, sv.rating, sv.reviews); err != nil {
			log.Fatalf("seed: failed to set rating for %s: %v", sv.profile.BusinessName, err)
		}
		if err := vendors.SetVerified(profile.ID, true); err != nil {
			log.Fatalf("seed: failed to verify %s: %v", sv.profile.BusinessName, err)
		}
		profileIDs = append(profileIDs, profile.ID)
	}

	seedServices := []models.Service{
		{VendorID: profileIDs[0], Name: "Pre-Wedding Shoot", Description: "Outdoor shoot at 2 locations.", Price: 30000, Category: "Photography"},
		{VendorID: profileIDs[0], Name: "Wedding Day Package", Description: "Full day coverage with 2 photographers + 1 videographer.", Price: 150000, Category: "Photography"},
		{VendorID: profileIDs[1], Name: "Gold Hall Rental", Description: "AC Hall with 500 seating capacity.", Price: 200000, Category: "Venue"},
	}
	for i := range seedServices {
		seedServices[i].ID = uuid.New().String()
		if err := services.Create(&seedServices[i]); err != nil {
			log.Fatalf("seed: failed to create service %s: %v", seedServices[i].Name, err)
		}
	}

	log.Println("Data Imported!")
}
