package domain

import "time"

// Client represents a hotel guest
type Client struct {
	ID       int64
	FullName string
	DNI      string // national ID or passport, unique
	Email    *string
	Phone    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientContactUpdate carries the optional contact fields that can be corrected at check-in
type ClientContactUpdate struct {
	FullName *string
	Email    *string
	Phone    *string
}

// IsEmpty returns true if nothing is to be updated
func (u *ClientContactUpdate) IsEmpty() bool {
	return u == nil || (u.FullName == nil && u.Email == nil && u.Phone == nil)
}

// Apply copies the non-nil fields onto c
func (u *ClientContactUpdate) Apply(c *Client) {
	if u == nil {
		return
	}
	if u.FullName != nil {
		c.FullName = *u.FullName
	}
	if u.Email != nil {
		c.Email = u.Email
	}
	if u.Phone != nil {
		c.Phone = u.Phone
	}
}
