package postgres

import "github.com/google/uuid"

// PurchaseModel is the row shape of the purchases table.
type PurchaseModel struct {
	ID        uuid.UUID
	Market    string
	Data      []byte
	CreatedAt int64
	UpdatedAt *int64
}
