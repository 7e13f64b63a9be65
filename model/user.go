package model

type Role string

const (
	RoleRenter Role = "renter"
	RoleHost   Role = "host"
)

func (r Role) Valid() bool {
	return r == RoleRenter || r == RoleHost
}

// User is the UserInfo block the auth endpoints return.
type User struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     Role   `json:"role"`
	Profile  string `json:"profile"`
}
