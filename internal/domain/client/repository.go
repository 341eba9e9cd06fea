package client

import "context"

type ListFilter struct {
	Query  string
	Limit  int
	Offset int
}

type Repository interface {
	// Create inserts c and assigns its ID.
	Create(ctx context.Context, c *Client) error

	Get(ctx context.Context, id uint) (*Client, error)

	List(ctx context.Context, f ListFilter) ([]Client, int64, error)

	// Update and Delete require c to pass ValidateForIdentification.
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, c *Client) error
}
