package models

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

var Roles = []string{RoleCustomer, RoleAdmin}

// User representa un cliente o administrador
type User struct {
	Name         string                   `json:"name" bson:"name"`
	Email        string                   `json:"email" bson:"email"`
	PasswordHash string                   `json:"-" bson:"password_hash"`
	Role         string                   `json:"role" bson:"role"`
	Phone        *string                  `json:"phone" bson:"phone"`
	Addresses    []map[string]interface{} `json:"addresses" bson:"addresses"`
	IsActive     bool                     `json:"is_active" bson:"is_active"`
}

func (User) EntityName() string { return "User" }

type UserInput struct {
	Name         string                   `json:"name"`
	Email        string                   `json:"email"`
	PasswordHash string                   `json:"password_hash"`
	Role         string                   `json:"role,omitempty"`
	Phone        *string                  `json:"phone,omitempty"`
	Addresses    []map[string]interface{} `json:"addresses,omitempty"`
	IsActive     *bool                    `json:"is_active,omitempty"`
}

func NewUser(in UserInput) (*User, error) {
	c := &checker{}
	c.required("name", in.Name)
	c.email("email", in.Email)
	c.required("password_hash", in.PasswordHash)
	role := stringOr(in.Role, RoleCustomer)
	c.oneOf("role", role, Roles)

	if err := c.err(); err != nil {
		return nil, err
	}
	return &User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		Role:         role,
		Phone:        in.Phone,
		Addresses:    in.Addresses,
		IsActive:     boolOr(in.IsActive, true),
	}, nil
}
