package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Roles. A platform owner has cross-tenant visibility; everyone else is
// pinned to their client_id.
const (
	RolePlatformOwner = "platform_owner"
	RoleAdmin         = "admin"
)

// User links an authenticated principal to a Client. ClientID stays nil
// until onboarding assigns the user to a tenant.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID  *uuid.UUID     `gorm:"type:uuid;index" json:"client_id"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	FirstName string         `gorm:"size:100" json:"first_name"`
	LastName  string         `gorm:"size:100" json:"last_name"`
	Role      string         `gorm:"size:30;default:'admin'" json:"role"`
	Profile   datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"profile"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "client_users" }

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func (u *User) IsPlatformOwner() bool { return u.Role == RolePlatformOwner }
