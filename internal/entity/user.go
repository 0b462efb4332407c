package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      *string   `json:"name,omitempty" db:"name"`
	Password  string    `json:"-" db:"password"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse is what sign-in returns: the user plus a bearer token.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UserSettings are the per-user notification and display preferences.
// A user without a stored row gets DefaultUserSettings.
type UserSettings struct {
	UserID             uuid.UUID `json:"-" db:"user_id"`
	EmailNotifications bool      `json:"emailNotifications" db:"email_notifications"`
	SpendingAlerts     bool      `json:"spendingAlerts" db:"spending_alerts"`
	AlertThreshold     float64   `json:"alertThreshold" db:"alert_threshold"`
	Theme              string    `json:"theme" db:"theme"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

func DefaultUserSettings(userID uuid.UUID) UserSettings {
	return UserSettings{
		UserID:             userID,
		EmailNotifications: true,
		SpendingAlerts:     true,
		AlertThreshold:     100,
		Theme:              "light",
	}
}

type UpdateSettingsRequest struct {
	EmailNotifications *bool    `json:"emailNotifications,omitempty"`
	SpendingAlerts     *bool    `json:"spendingAlerts,omitempty"`
	AlertThreshold     *float64 `json:"alertThreshold,omitempty" binding:"omitempty,gte=0"`
	Theme              *string  `json:"theme,omitempty"`
}
