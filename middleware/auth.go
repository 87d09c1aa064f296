package middleware

import (
	"fmt"
	"strings"

	"tms-lite/constants"
	"tms-lite/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RequirePermissions checks an HS256 bearer token for any of the given
// permissions. An empty secret disables the check so local setups work
// without tokens.
func RequirePermissions(secret string, permissions ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}

		claims, err := parseBearer(c.Get("Authorization"), secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Unauthorized: " + err.Error(),
				Status:  fiber.StatusUnauthorized,
			})
		}

		if !hasAnyPermission(extractUserPermissionsFromClaims(claims), permissions) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}

func parseBearer(authHeader, secret string) (jwt.MapClaims, error) {
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header missing")
	}

	// Split "Bearer <token>"
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, fmt.Errorf("invalid token format")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenParts[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func hasAnyPermission(userPermissions map[string]bool, required []string) bool {
	for _, p := range constants.AdminPermissions {
		if userPermissions[p] {
			return true
		}
	}
	if len(required) == 0 {
		return true
	}
	for _, p := range required {
		if userPermissions[p] {
			return true
		}
	}
	return false
}

func extractUserPermissionsFromClaims(claims jwt.MapClaims) map[string]bool {
	permissionSet := make(map[string]bool)

	userPermissions, ok := claims["permissions"].([]interface{})
	if !ok {
		return permissionSet
	}

	for _, p := range userPermissions {
		if perm, ok := p.(string); ok {
			permissionSet[perm] = true
		}
	}

	return permissionSet
}
