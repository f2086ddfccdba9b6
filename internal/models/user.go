package models

import "golang.org/x/crypto/bcrypt"

// ===============================
// Roles
// ===============================

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

func IsValidRole(r Role) bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// ===============================
// User
// ===============================

type User struct {
	BaseModel

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         Role   `gorm:"size:20;default:'patient'" json:"role"`
	Status       string `gorm:"size:20;default:'pending'" json:"status"`

	// Doctor-only profile fields
	Specialty  string `gorm:"size:100" json:"specialty,omitempty"`
	Department string `gorm:"size:100" json:"department,omitempty"`
}

// SetPassword hashes a plain password onto the user.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}
