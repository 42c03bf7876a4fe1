package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nandraak/siakad/internal/dto"
	"github.com/nandraak/siakad/internal/identity"
)

func requireRole(role identity.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		got, exists := ctx.Get(CtxRole)
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
			return
		}
		if got != string(role) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient role"})
			return
		}
		ctx.Next()
	}
}

// LecturerOnly gates routes to accounts whose stored role is dosen.
func LecturerOnly() gin.HandlerFunc { return requireRole(identity.RoleLecturer) }

// StudentOnly gates routes to accounts whose stored role is mahasiswa.
func StudentOnly() gin.HandlerFunc { return requireRole(identity.RoleStudent) }
