package middleware

import (
	"fmt"
	"log"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/fadilmartias/mock-interview/internal/util"
	"github.com/gofiber/fiber/v2"
)

const userIDKey = "userID"

// Authenticate resolves the current user from an HS256 bearer token and
// stores the `sub` claim for handlers. Requests without a valid token are
// rejected with 401.
func Authenticate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c, "missing bearer token", nil)
		}
		userID, err := ParseUserID(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			log.Printf("Rejected token: %v", err)
			return unauthorized(c, "invalid token", err)
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// CurrentUserID returns the user resolved by Authenticate, or "".
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}

// ParseUserID validates the token signature and expiry and returns its subject.
func ParseUserID(tokenString, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt secret is not configured")
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}

func unauthorized(c *fiber.Ctx, message string, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusUnauthorized,
		Message: message,
	}, err)
}
