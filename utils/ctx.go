package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the user id bound by the auth middlewares. Zero
// means unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

func CurrentRole(c *gin.Context) string {
	v, ok := c.Get("role")
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}
