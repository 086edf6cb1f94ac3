package profile

import "time"

const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
)

// Profile is the denormalized metadata for an authenticated identity. The ID
// is the identity service's user id; the row is created at sign-up and never
// updated by this application.
type Profile struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"not null"`
	Role      string    `gorm:"not null;default:'employee'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleEmployee
}
