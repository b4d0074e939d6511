package handler

import (
	"strconv"

	"Club_Community/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// fail 按错误种类映射状态码，文案即响应体
func fail(c *gin.Context, err error) {
	c.JSON(errs.HTTPStatus(err), gin.H{"msg": err.Error()})
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		fail(c, errs.Validation("invalid id"))
		return 0, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) uint64 {
	id, _ := strconv.ParseUint(c.Query(name), 10, 64)
	return id
}
