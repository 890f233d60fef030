package appointment

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

type Status string

const (
	StatusPendente    Status = "pendente"
	StatusConfirmado  Status = "confirmado"
	StatusDivergencia Status = "divergencia"
	StatusCancelado   Status = "cancelado"
	StatusConcluido   Status = "concluido"
	StatusForaPrazo   Status = "fora_prazo"
)

var ErrInvalidStatus = errors.New("invalid appointment status")

func NewStatus(value string) (Status, error) {
	s := Status(value)
	switch s {
	case StatusPendente, StatusConfirmado, StatusDivergencia,
		StatusCancelado, StatusConcluido, StatusForaPrazo:
		return s, nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string {
	return string(s)
}

// Terminal statuses accept no further operator transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelado, StatusConcluido, StatusForaPrazo:
		return true
	}
	return false
}

type CanceledBy string

const (
	CanceledByCustomer CanceledBy = "cliente"
	CanceledByWorkshop CanceledBy = "oficina"
)

var ErrInvalidCanceledBy = errors.New("invalid cancellation actor")

func NewCanceledBy(value string) (CanceledBy, error) {
	cb := CanceledBy(value)
	switch cb {
	case CanceledByCustomer, CanceledByWorkshop:
		return cb, nil
	}
	return "", ErrInvalidCanceledBy
}

func (cb CanceledBy) String() string {
	return string(cb)
}

var (
	ErrInvalidCustomerName  = errors.New("customer name is required")
	ErrInvalidCustomerEmail = errors.New("invalid customer email")
	ErrInvalidCustomerCPF   = errors.New("invalid customer CPF")
	ErrInvalidCustomerPhone = errors.New("customer phone is required")
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// Customer is the denormalized customer identity stored on each appointment.
type Customer struct {
	name  string
	cpf   string
	phone string
	email string
}

func NewCustomer(name, cpf, phone, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrInvalidCustomerName
	}

	cpf = nonDigitRegex.ReplaceAllString(cpf, "")
	if len(cpf) != 11 {
		return Customer{}, ErrInvalidCustomerCPF
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return Customer{}, ErrInvalidCustomerPhone
	}

	email = strings.TrimSpace(email)
	if email == "" || !emailRegex.MatchString(email) {
		return Customer{}, ErrInvalidCustomerEmail
	}

	return Customer{name: name, cpf: cpf, phone: phone, email: email}, nil
}

// ReconstructCustomer rebuilds the value object from stored columns without
// re-running creation-time validation.
func ReconstructCustomer(name, cpf, phone, email string) Customer {
	return Customer{name: name, cpf: cpf, phone: phone, email: email}
}

func (c Customer) Name() string  { return c.name }
func (c Customer) CPF() string   { return c.cpf }
func (c Customer) Phone() string { return c.phone }
func (c Customer) Email() string { return c.email }

var ErrInvalidWorkshopInfo = errors.New("workshop name is required")

// WorkshopInfo is the denormalized workshop descriptor stored on each
// appointment so listings survive tenant edits.
type WorkshopInfo struct {
	name    string
	address string
	phone   string
}

func NewWorkshopInfo(name, address, phone string) (WorkshopInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return WorkshopInfo{}, ErrInvalidWorkshopInfo
	}
	return WorkshopInfo{
		name:    name,
		address: strings.TrimSpace(address),
		phone:   strings.TrimSpace(phone),
	}, nil
}

func ReconstructWorkshopInfo(name, address, phone string) WorkshopInfo {
	return WorkshopInfo{name: name, address: address, phone: phone}
}

func (w WorkshopInfo) Name() string    { return w.name }
func (w WorkshopInfo) Address() string { return w.address }
func (w WorkshopInfo) Phone() string   { return w.phone }

var ErrInvalidPayload = errors.New("payload must be valid non-empty JSON")

// Payload is an opaque structured document (vehicle descriptor, service list).
// It is stored verbatim and must round-trip without loss.
type Payload struct {
	raw json.RawMessage
}

func NewPayload(raw json.RawMessage) (Payload, error) {
	if len(raw) == 0 || !json.Valid(raw) {
		return Payload{}, ErrInvalidPayload
	}
	return Payload{raw: raw}, nil
}

func ReconstructPayload(raw json.RawMessage) Payload {
	return Payload{raw: raw}
}

func (p Payload) Raw() json.RawMessage {
	return p.raw
}
