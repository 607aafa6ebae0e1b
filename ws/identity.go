package ws

import "github.com/muhwezim78/Nashiecom-sub000/entity"

// Identity is the authenticated actor bound to a connection. It is
// established by the auth layer before any join and trusted as given.
type Identity struct {
	UserID uint
	Role   string
}

func (i Identity) IsAdmin() bool {
	return i.Role == entity.RoleAdmin
}
