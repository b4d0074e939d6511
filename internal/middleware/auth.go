package middleware

import (
	"net/http"
	"strings"

	"Club_Community/internal/pkg"
	"Club_Community/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
			c.Abort()
			return
		}

		tokenStr := parts[1]
		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			c.Abort()
			return
		}

		// redis 可用时做单点登录校验，token 不一致视为已在别处登录
		if redis.Enabled() {
			userRep := &redis.UserRepository{}
			originToken, err := userRep.GetUserToken(claims.UserID)
			if err != nil || originToken != tokenStr {
				c.JSON(http.StatusUnauthorized, gin.H{"msg": "account has been logged in elsewhere"})
				c.Abort()
				return
			}
			_ = userRep.ExtendUserToken(claims.UserID)
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID 从请求上下文取登录用户，登录态由 AuthMiddleware 保证
func CurrentUserID(c *gin.Context) uint64 {
	v, _ := c.Get(ContextUserIDKey)
	id, _ := v.(uint64)
	return id
}
