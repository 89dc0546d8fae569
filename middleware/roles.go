package middleware

import (
	"survey-tools-backend/models"
	apimodels "survey-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func AdminRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}

func getClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	return token.Claims.(jwt.MapClaims)
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := getClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserEmail(ctx *fiber.Ctx) string {
	claims := getClaims(ctx)
	if email, exist := claims["email"]; exist {
		return email.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := getClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
