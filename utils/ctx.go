package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the user id the auth middleware stored on the context.
// Zero means unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}
