package dtos

import "time"

// CreateApplicationRequest is the new-application form payload.
type CreateApplicationRequest struct {
	Title       string    `json:"title" binding:"required"`
	Company     string    `json:"company" binding:"required"`
	DateApplied time.Time `json:"date_applied" binding:"required"`

	// Optional Fields
	Status         string     `json:"status"`
	Platform       string     `json:"platform"`
	EmploymentType *string    `json:"employment_type" binding:"omitempty,oneof=full-time part-time internship"`
	IsRemote       *bool      `json:"is_remote"`
	Location       *string    `json:"location"`
	Salary         *float64   `json:"salary" binding:"omitempty,gte=0"`
	Referral       *string    `json:"referral"`
	HRContact      *string    `json:"hr_contact"`
	Description    *string    `json:"description"`
	Notes          *string    `json:"notes"`
	FollowUp       *time.Time `json:"follow_up"`
}

// ApplicationPatch is a partial update: only non-nil fields are written.
type ApplicationPatch struct {
	Title          *string    `json:"title"`
	Company        *string    `json:"company"`
	DateApplied    *time.Time `json:"date_applied"`
	Status         *string    `json:"status"`
	Platform       *string    `json:"platform"`
	EmploymentType *string    `json:"employment_type" binding:"omitempty,oneof=full-time part-time internship"`
	IsRemote       *bool      `json:"is_remote"`
	Location       *string    `json:"location"`
	Salary         *float64   `json:"salary" binding:"omitempty,gte=0"`
	Referral       *string    `json:"referral"`
	HRContact      *string    `json:"hr_contact"`
	Description    *string    `json:"description"`
	Notes          *string    `json:"notes"`
	FollowUp       *time.Time `json:"follow_up"`
	IsArchive      *bool      `json:"is_archive"`
}

// Updates flattens the patch into a column map for the store layer.
func (p ApplicationPatch) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if p.Title != nil {
		u["title"] = *p.Title
	}
	if p.Company != nil {
		u["company"] = *p.Company
	}
	if p.DateApplied != nil {
		u["date_applied"] = *p.DateApplied
	}
	if p.Status != nil {
		u["status"] = *p.Status
	}
	if p.Platform != nil {
		u["platform"] = *p.Platform
	}
	if p.EmploymentType != nil {
		u["employment_type"] = *p.EmploymentType
	}
	if p.IsRemote != nil {
		u["is_remote"] = *p.IsRemote
	}
	if p.Location != nil {
		u["location"] = *p.Location
	}
	if p.Salary != nil {
		u["salary"] = *p.Salary
	}
	if p.Referral != nil {
		u["referral"] = *p.Referral
	}
	if p.HRContact != nil {
		u["hr_contact"] = *p.HRContact
	}
	if p.Description != nil {
		u["description"] = *p.Description
	}
	if p.Notes != nil {
		u["notes"] = *p.Notes
	}
	if p.FollowUp != nil {
		u["follow_up"] = *p.FollowUp
	}
	if p.IsArchive != nil {
		u["is_archive"] = *p.IsArchive
	}
	return u
}

// BulkUpdateRequest applies one patch to one or many applications.
type BulkUpdateRequest struct {
	IDs   []uint           `json:"ids" binding:"required,min=1"`
	Patch ApplicationPatch `json:"patch"`
}

// BulkDeleteRequest permanently removes one or many applications.
type BulkDeleteRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}
