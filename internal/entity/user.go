package entity

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// Role is the caller's authorization tier. The auth service verifies
// credentials; this service only consumes the resolved role.
type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Validate() error {
	switch r {
	case RoleOwner, RoleStaff:
		return nil
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, r.String())
	}
}

type User struct {
	ID       uuid.UUID
	Username string
	Role     Role
}

func (u User) String() string {
	return fmt.Sprintf("%s (%s)", u.Username, u.ID)
}
