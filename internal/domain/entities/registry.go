package entities

import "time"

// Client and Equipment are owned by the registry service; the OS service
// reads them only to validate tenancy and ownership when opening a work
// order.

type Client struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Equipment struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	ClientID     string    `json:"client_id"`
	Description  string    `json:"description"`
	SerialNumber string    `json:"serial_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
