package users

import "time"

const (
	RoleUser  = "user"
	RoleStaff = "staff"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	FirstName    string
	LastName     string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	return u.FirstName + " " + u.LastName
}

func (u User) IsStaff() bool {
	return u.Role == RoleStaff
}
