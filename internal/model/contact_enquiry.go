package model

import "time"

// Contact enquiry statuses. Unlike the boolean *Status fields on catalogue
// entities, enquiries move through a tri-state workflow.
const (
	EnquiryStatusPending  = "pending"
	EnquiryStatusResolved = "resolved"
	EnquiryStatusClosed   = "closed"
)

// ContactEnquiry represents a message submitted through the contact form.
type ContactEnquiry struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	ContactName    string     `json:"contactName" gorm:"type:varchar(255);not null"`
	ContactEmail   string     `json:"contactEmail" gorm:"type:varchar(255);not null"`
	ContactPhone   string     `json:"contactPhone" gorm:"type:varchar(50);not null"`
	ContactMessage string     `json:"contactMessage" gorm:"type:text;not null"`
	ContactStatus  string     `json:"contactStatus" gorm:"type:varchar(20);default:'pending'"`
	IsDeleted      bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt      *time.Time `json:"deletedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// ValidEnquiryStatus reports whether s is one of the known workflow states.
func ValidEnquiryStatus(s string) bool {
	switch s {
	case EnquiryStatusPending, EnquiryStatusResolved, EnquiryStatusClosed:
		return true
	}
	return false
}
