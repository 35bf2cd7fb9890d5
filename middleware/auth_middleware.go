package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "leave-tracking-backend/lib/utils/auth-utils"
	"leave-tracking-backend/models"
	apimodels "leave-tracking-backend/models/api"
)

func AdminRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		return name.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
