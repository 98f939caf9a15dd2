package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/msgs"
	"collabBoard/internal/utils"
)

func (rh *RestHandler) MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		jwtToken := ctx.GetHeader("Authorization")
		jwtToken = strings.TrimPrefix(jwtToken, "Bearer ")

		if jwtToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []string{errs.ErrUnauthorized.Error()},
			})
			return
		}

		claims, err := utils.VerifyToken(jwtToken, rh.authService.JwtKey())
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
				Success: false,
				Message: msgs.MsgYouMustLoginFirst,
				Errors:  []string{errs.ErrUnauthorized.Error()},
			})
			return
		}

		ctx.Set("user_id", claims.ID)
		ctx.Set("user_email", claims.Email)
		ctx.Next()
	}
}
