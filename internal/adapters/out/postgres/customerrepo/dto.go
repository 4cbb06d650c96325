// Package customerrepo persists customers.
package customerrepo

import (
	"salesflow/internal/core/domain/model/customer"
	"salesflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row of the customers table. Names are unique; imports
// look customers up by name.
type CustomerDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"uniqueIndex;not null"`
	Contact ContactDTO `gorm:"embedded;embeddedPrefix:contact_"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type ContactDTO struct {
	Email   string
	Phone   string
	Address string
}

func fromDomain(c *customer.Customer) CustomerDTO {
	contact := c.Contact()
	return CustomerDTO{
		ID:   c.ID().Bytes(),
		Name: c.Name(),
		Contact: ContactDTO{
			Email:   contact.Email,
			Phone:   contact.Phone,
			Address: contact.Address,
		},
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, customer.Contact{
		Email:   dto.Contact.Email,
		Phone:   dto.Contact.Phone,
		Address: dto.Contact.Address,
	})
}
