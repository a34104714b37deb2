package models

import (
	"time"

	"github.com/google/uuid"
)

// Canonical application statuses. The column stays a plain string so
// values imported from elsewhere survive round-trips; the analytics
// layer buckets unknown literals under their own name.
const (
	StatusApplied     = "Applied"
	StatusPhoneScreen = "Phone Screen"
	StatusInterview   = "Interview"
	StatusOffer       = "Offer"
	StatusRejected    = "Rejected"
)

// CanonicalStatuses is the display/aggregation order for the status enum.
var CanonicalStatuses = []string{
	StatusApplied,
	StatusPhoneScreen,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

// Employment types. Absent means unclassified.
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentInternship = "internship"
)

// Application is one tracked job application. Optional columns are
// pointers so "never filled in" is distinguishable from a zero value.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Owner scoping: every query filters on this.
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Title   string `gorm:"not null" json:"title"`
	Company string `gorm:"not null" json:"company"`

	// Required on creation, but nullable in storage: rows imported with a
	// bad date still show in the table, they just drop out of the charts.
	DateApplied *time.Time `json:"date_applied"`

	Status   string `gorm:"default:'Applied'" json:"status"`
	Platform string `json:"platform"`

	EmploymentType *string    `json:"employment_type,omitempty"`
	IsRemote       *bool      `json:"is_remote,omitempty"`
	Location       *string    `json:"location,omitempty"`
	Salary         *float64   `json:"salary,omitempty"`
	Referral       *string    `json:"referral,omitempty"`
	HRContact      *string    `json:"hr_contact,omitempty"`
	Description    *string    `gorm:"type:text" json:"description,omitempty"`
	Notes          *string    `gorm:"type:text" json:"notes,omitempty"`
	FollowUp       *time.Time `json:"follow_up,omitempty"`

	// Archived rows are excluded from aggregation and the default table
	// view but stay in storage until explicitly deleted.
	IsArchive bool `gorm:"default:false;index" json:"is_archive"`
}

// User mirrors the identity provider's subject so account settings have
// somewhere to live locally.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	FullName string `json:"full_name"`
}
