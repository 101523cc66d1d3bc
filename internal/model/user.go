package model

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents a storefront user account. Password, refresh token and
// reset-token fields are never serialized. RefreshToken holds the single
// active refresh token; a new login overwrites it, invalidating the previous
// session.
type User struct {
	ID                   uint       `json:"id" gorm:"primaryKey"`
	Username             string     `json:"username" gorm:"type:varchar(100);not null;index"`
	Email                string     `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Fullname             string     `json:"fullname" gorm:"type:varchar(255);not null"`
	Password             string     `json:"-" gorm:"type:varchar(255);not null"`
	Avatar               string     `json:"avatar" gorm:"type:varchar(512)"`
	CoverImage           string     `json:"coverImage" gorm:"type:varchar(512)"`
	Status               bool       `json:"status" gorm:"default:true"`
	Gender               string     `json:"gender" gorm:"type:varchar(20)"`
	Phone                string     `json:"phone" gorm:"type:varchar(50)"`
	Address              string     `json:"address" gorm:"type:text"`
	Slug                 string     `json:"slug" gorm:"type:varchar(255);index"`
	RefreshToken         string     `json:"-" gorm:"type:varchar(512)"`
	ForgotPasswordToken  string     `json:"-" gorm:"type:varchar(128)"`
	ForgotPasswordExpiry *time.Time `json:"-"`
	IsDeleted            bool       `json:"isDeleted" gorm:"default:false"`
	DeletedAt            *time.Time `json:"deletedAt"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// BeforeSave normalizes username and email to lowercase before every write
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// SetPassword hashes and stores the given plaintext password
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword reports whether the given plaintext matches the stored hash
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

var slugStripper = regexp.MustCompile(`[^a-z0-9]+`)

// MakeSlug derives a URL-safe slug from a display name
func MakeSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugStripper.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
