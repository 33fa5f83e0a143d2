package entity

import "time"

// Client representa un cliente de la tienda.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}
