package models

import (
	"net/mail"
	"strings"
)

// Member roles and statuses.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	MemberActive   = "ACTIVE"
	MemberInactive = "INACTIVE"
)

// Member is a registered cooperative member.
type Member struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	NIK          string `json:"nik,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"` // bcrypt; kept in snapshots, stripped from API reads
	Role         string `json:"role"`
	JoinDate     string `json:"joinDate"`
	Status       string `json:"status"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
}

// Public returns a copy safe to return from the API.
func (m Member) Public() Member {
	m.PasswordHash = ""
	return m
}

// RegisterInput is the self-service registration payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	NIK      string `json:"nik"`
	Password string `json:"password"`
}

func (r *RegisterInput) Validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required"
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return "email is invalid"
	}
	if len(r.Password) < 6 {
		return "password too short (min 6)"
	}
	return ""
}

// MemberInput is used by the admin for updating member records.
type MemberInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	NIK       string `json:"nik"`
	Status    string `json:"status"`
	AvatarURL string `json:"avatarUrl"`
}

func (m *MemberInput) Validate() string {
	if strings.TrimSpace(m.Name) == "" {
		return "name is required"
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return "email is invalid"
	}
	switch m.Status {
	case MemberActive, MemberInactive:
	default:
		return "status must be ACTIVE or INACTIVE"
	}
	return ""
}
