package v1

import (
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID uint `uri:"id" binding:"required"` // ID of the resource
}

// bindID binds the ID of the resource from the URL.
func bindID(c *gin.Context) (uint, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return 0, errInvalidID
	}

	return uri.ID, nil
}
