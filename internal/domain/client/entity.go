// Package client holds the Client record and the rules that decide whether
// it may be created or addressed by id.
package client

// Client is a service-order customer.
//
// ID is owned by the persistence layer: nil until the record is created,
// then set once and never changed.
type Client struct {
	ID    *uint  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (c Client) IsPersisted() bool {
	return c.ID != nil
}

// AssignID sets the identifier after a successful insert.
func (c *Client) AssignID(id uint) error {
	if c.ID != nil {
		return ErrAlreadyPersisted
	}
	c.ID = &id
	return nil
}
