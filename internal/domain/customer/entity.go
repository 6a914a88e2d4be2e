package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName    = errors.New("el nombre debe tener entre 2 y 100 caracteres")
	ErrAddressTooLong = errors.New("la dirección no puede tener más de 255 caracteres")
	ErrNotesTooLong   = errors.New("las notas no pueden tener más de 500 caracteres")
)

// Customer representa un cliente del negocio
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCustomer crea un nuevo cliente validando sus datos
func NewCustomer(name, phone, address, email, notes string) (*Customer, error) {
	c := &Customer{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}

	if err := c.fill(name, phone, address, email, notes); err != nil {
		return nil, err
	}

	return c, nil
}

// Update actualiza los datos del cliente
func (c *Customer) Update(name, phone, address, email, notes string) error {
	return c.fill(name, phone, address, email, notes)
}

func (c *Customer) fill(name, phone, address, email, notes string) error {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 100 {
		return ErrInvalidName
	}

	address = strings.TrimSpace(address)
	if len(address) > 255 {
		return ErrAddressTooLong
	}

	notes = strings.TrimSpace(notes)
	if len(notes) > 500 {
		return ErrNotesTooLong
	}

	c.Name = name
	c.Phone = strings.TrimSpace(phone)
	c.Address = address
	c.Email = strings.TrimSpace(email)
	c.Notes = notes
	c.UpdatedAt = time.Now()

	return nil
}
