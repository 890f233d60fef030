package operator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

func NewRole(value string) (Role, error) {
	r := Role(value)
	switch r {
	case RoleAdmin, RoleOperator:
		return r, nil
	}
	return "", ErrInvalidRole
}

func (r Role) String() string {
	return string(r)
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" || !emailRegex.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

// Operator is a workshop staff account allowed to drive appointment
// transitions through the admin surface.
type Operator struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	workshopID   uuid.UUID
	isActive     bool
}

func NewOperator(email Email, passwordHash string, role Role, workshopID uuid.UUID) *Operator {
	return &Operator{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		workshopID:   workshopID,
		isActive:     true,
	}
}

func ReconstructOperator(id uuid.UUID, email Email, passwordHash string, role Role, workshopID uuid.UUID, isActive bool) *Operator {
	return &Operator{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		workshopID:   workshopID,
		isActive:     isActive,
	}
}

func (o *Operator) ID() uuid.UUID         { return o.id }
func (o *Operator) Email() Email          { return o.email }
func (o *Operator) PasswordHash() string  { return o.passwordHash }
func (o *Operator) Role() Role            { return o.role }
func (o *Operator) WorkshopID() uuid.UUID { return o.workshopID }
func (o *Operator) IsActive() bool        { return o.isActive }
