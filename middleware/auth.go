package middleware

import (
	"net/http"
	"strings"

	instructorRepo "slopeline/database/repository/instructor"
	"slopeline/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthInstructorMiddleware authenticates instructor requests. With
// optional set, an absent or invalid token passes through without setting the
// instructor identity (public profile reads).
func JWTAuthInstructorMiddleware(repo instructorRepo.InstructorRepository, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization token"})
			return
		}

		id, err := utils.ExtractIDFromToken(token)
		if err != nil {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		// The token must still match the instructor's current session. The
		// auth cache short-circuits the lookup for repeat requests.
		ctx := c.Request.Context()
		tokenHash := utils.HashToken(token)
		cacheKey := utils.AuthCachePrefix + id

		authCache := utils.GetAuthCacheClient()
		if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached == tokenHash {
			c.Set("instructorID", id)
			c.Next()
			return
		}

		inst, err := repo.GetByID(ctx, id)
		if err != nil || inst.TokenHash != tokenHash {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked"})
			return
		}

		if err := authCache.Set(ctx, cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("auth cache write failed", zap.Error(err))
		}

		c.Set("instructorID", id)
		c.Next()
	}
}

// JWTAuthUserMiddleware authenticates student requests by token subject.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization token"})
			return
		}
		id, err := utils.ExtractIDFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("userID", id)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
