package models

// MockTechnicianID is the id of the seeded demo technician every booking is
// assigned to.
const MockTechnicianID = "t1"

// Review is a single customer review attached to a technician.
type Review struct {
	ID       string `bson:"id" json:"id"`
	UserName string `bson:"user_name" json:"userName"`
	Rating   int    `bson:"rating" json:"rating"`
	Comment  string `bson:"comment" json:"comment"`
	Date     string `bson:"date" json:"date"`
}

// Technician is a service provider profile.
type Technician struct {
	ID            string   `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Role          string   `bson:"role" json:"role"`
	Rating        float64  `bson:"rating" json:"rating"`
	ReviewCount   int      `bson:"review_count" json:"reviewCount"`
	JobsCompleted int      `bson:"jobs_completed" json:"jobsCompleted"`
	Experience    string   `bson:"experience" json:"experience"`
	About         string   `bson:"about" json:"about"`
	Reviews       []Review `bson:"reviews" json:"reviews"`
	Portfolio     []string `bson:"portfolio" json:"portfolio"`
}

// TechnicianOnboarding carries the onboarding form for a new technician.
type TechnicianOnboarding struct {
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	HourlyRate     string `json:"hourlyRate"`
	ServiceArea    string `json:"serviceArea"`
	Bio            string `json:"bio"`
}

// TechnicianProfileEdit carries the editable profile fields.
type TechnicianProfileEdit struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Experience string `json:"experience"`
	About      string `json:"about"`
}
