package dto

import (
	"time"

	"github.com/google/uuid"
)

// AuthActionRequest is the action-dispatch body accepted by POST /api/auth.
type AuthActionRequest struct {
	Action       string     `json:"action"`
	Email        string     `json:"email"`
	Password     string     `json:"password"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         string     `json:"role"`
	ClientID     *uuid.UUID `json:"clientId"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uuid.UUID      `json:"id"`
	Email     string         `json:"email"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Role      string         `json:"role"`
	ClientID  *uuid.UUID     `json:"clientId,omitempty"`
	Client    *ClientSummary `json:"client,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ClientSummary is the tenant profile joined onto auth responses.
type ClientSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Domain       *string   `json:"domain,omitempty"`
	BusinessType string    `json:"businessType"`
	Status       string    `json:"status"`
}
