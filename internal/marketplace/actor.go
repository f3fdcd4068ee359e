package marketplace

import "fmt"

// Роль участника маркетплейса.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleProvider
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", Invalid("role", "unknown role %q", s)
	}
	return r, nil
}

// Actor — аутентифицированный участник, от имени которого выполняется операция.
type Actor struct {
	UserID int64
	Role   Role
}

func (a Actor) IsCustomer() bool { return a.Role == RoleCustomer }
func (a Actor) IsProvider() bool { return a.Role == RoleProvider }

func (a Actor) String() string {
	return fmt.Sprintf("%s:%d", a.Role, a.UserID)
}

// Require проверяет роль участника.
func (a Actor) Require(role Role) error {
	if a.UserID <= 0 || !a.Role.Valid() {
		return Unauthenticated("authentication required")
	}
	if a.Role != role {
		return Unauthorized("only a %s may perform this action", role)
	}
	return nil
}
