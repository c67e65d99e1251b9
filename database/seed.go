package database

import (
	"time"

	"trustmate/models"
)

// SeedBookings returns the demo booking history shown before any real booking
// exists. Dates are relative to now so the upcoming/past split stays sensible.
func SeedBookings() []models.Booking {
	now := time.Now()
	return []models.Booking{
		{
			ID:             "101",
			ServiceID:      "3", // Cleaning
			Date:           now.AddDate(0, 0, 2),
			Time:           "10:00 AM",
			Status:         models.StatusUpcoming,
			TechnicianName: "Sarah Jenkins",
			Address:        "123 Main St, Springfield",
			Description:    "Deep cleaning of living room and kitchen.",
			Price:          85,
			CreatedAt:      now.AddDate(0, 0, -1),
		},
		{
			ID:             "102",
			ServiceID:      "1", // House Maintenance
			Date:           now.AddDate(0, 0, -5),
			Time:           "02:00 PM",
			Status:         models.StatusCompleted,
			TechnicianName: "Mike Reynolds",
			Address:        "123 Main St, Springfield",
			Description:    "Fixing leaking pipe in the master bathroom.",
			Price:          45,
			CreatedAt:      now.AddDate(0, 0, -6),
		},
		{
			ID:             "103",
			ServiceID:      "5", // Motor Maintenance
			Date:           now.AddDate(0, 0, -20),
			Time:           "09:00 AM",
			Status:         models.StatusCompleted,
			TechnicianName: "AutoFix Inc.",
			Address:        "456 Oak Rd, Springfield",
			Description:    "Regular car servicing.",
			Price:          120,
			CreatedAt:      now.AddDate(0, 0, -21),
		},
	}
}

// SeedTechnician returns the demo technician profile.
func SeedTechnician() models.Technician {
	return models.Technician{
		ID:            "t1",
		Name:          "Mike Reynolds",
		Role:          "Senior Technician",
		Rating:        4.9,
		ReviewCount:   128,
		JobsCompleted: 342,
		Experience:    "8 Years",
		About: "Certified professional with over 8 years of experience in home maintenance and repairs. " +
			"Specialized in plumbing, electrical fixes, and smart home installations. " +
			"I take pride in delivering high-quality work and ensuring customer satisfaction.",
		Reviews: []models.Review{
			{ID: "r1", UserName: "Alice Smith", Rating: 5, Comment: "Mike was on time and fixed the leak quickly. Very professional!", Date: "2 days ago"},
			{ID: "r2", UserName: "Bob Johnson", Rating: 4, Comment: "Good job, but arrived a bit late due to traffic. Work was excellent though.", Date: "1 week ago"},
			{ID: "r3", UserName: "Carol Williams", Rating: 5, Comment: "Explained everything clearly and left the place clean. Highly recommend.", Date: "2 weeks ago"},
		},
		Portfolio: []string{
			"https://images.unsplash.com/photo-1581578731117-104f2a863a18?q=80&w=300&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1621905476059-5f34604809b6?q=80&w=300&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1505798577917-a65157d3320a?q=80&w=300&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1584622050111-993a426fbf0a?q=80&w=300&auto=format&fit=crop",
		},
	}
}
