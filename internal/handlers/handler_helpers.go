package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive numeric path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
