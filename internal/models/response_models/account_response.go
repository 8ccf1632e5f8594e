package response_models

import "github.com/google/uuid"

type AccountResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	IsAdmin            bool      `json:"is_admin"`
	Currency           string    `json:"currency"`
	EmailNotifications bool      `json:"email_notifications"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}
