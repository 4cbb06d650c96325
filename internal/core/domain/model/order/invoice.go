package order

import (
	"fmt"

	"github.com/google/uuid"
)

const invoicePrefix = "INV-"

// NewInvoiceID returns a unique invoice number. UUIDv7 keeps numbers issued
// later sorting after earlier ones.
func NewInvoiceID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate invoice id: %w", err)
	}
	return invoicePrefix + id.String(), nil
}
