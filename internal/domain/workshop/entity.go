package workshop

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidName    = errors.New("workshop name is required")
	ErrInvalidAddress = errors.New("workshop address is required")
	ErrInvalidPhone   = errors.New("workshop phone is required")
)

// Workshop is a service-center tenant ("oficina").
type Workshop struct {
	id      uuid.UUID
	name    string
	address string
	phone   string
	email   string
}

func NewWorkshop(name, address, phone, email string) (*Workshop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrInvalidAddress
	}
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrInvalidPhone
	}

	return &Workshop{
		id:      uuid.New(),
		name:    name,
		address: address,
		phone:   phone,
		email:   strings.TrimSpace(email),
	}, nil
}

func Reconstruct(id uuid.UUID, name, address, phone, email string) *Workshop {
	return &Workshop{
		id:      id,
		name:    name,
		address: address,
		phone:   phone,
		email:   email,
	}
}

func (w *Workshop) ID() uuid.UUID   { return w.id }
func (w *Workshop) Name() string    { return w.name }
func (w *Workshop) Address() string { return w.address }
func (w *Workshop) Phone() string   { return w.phone }
func (w *Workshop) Email() string   { return w.email }
