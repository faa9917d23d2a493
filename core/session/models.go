package session

import "github.com/jakmauu/tutam9-frontend/core"

// Identity is who the gateway says the stored token belongs to.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Auth is the response of the register and login endpoints.
type Auth struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Credentials contains information needed to log in.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Username = core.CleanString(c.Username, true /* lower */)
	return core.Validate.Struct(c)
}

// NewAccount contains information needed to register.
type NewAccount struct {
	Username string `json:"username" validate:"required,min=3,alphanum_"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (na *NewAccount) Validate() error {
	na.Username = core.CleanString(na.Username, true /* lower */)
	na.Email = core.CleanString(na.Email, true /* lower */)
	return core.Validate.Struct(na)
}
