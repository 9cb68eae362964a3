package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"fitbuddy/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// SessionCookieName is the cookie that mirrors the bearer token for browser clients.
const SessionCookieName = "token"

// ClearSessionCookie expires the session cookie on the response.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}

// AuthRequired is a middleware that enforces authentication for protected routes.
// The token is read from the Authorization header ("Bearer <token>") with the
// session cookie as a fallback for browser clients.
func AuthRequired(c *fiber.Ctx) error {
	tokenString := ""

	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c, "Invalid authorization header format")
		}
		tokenString = parts[1]
	} else if cookie := c.Cookies(SessionCookieName); cookie != "" {
		tokenString = cookie
	}

	if tokenString == "" {
		return unauthorized(c, "You are not authorized to perform this action")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		// The one business rule the transport layer owns: an expired token
		// must also clear the stored session cookie.
		if errors.Is(err, jwt.ErrTokenExpired) {
			ClearSessionCookie(c)
			return unauthorized(c, "Token expired, please log in again!")
		}
		return unauthorized(c, "Invalid or expired token")
	}
	if !token.Valid {
		return unauthorized(c, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return unauthorized(c, "Invalid token claims")
	}

	// User ID travels in the "sub" claim (RFC 7519 subject).
	subClaim, ok := claims["sub"]
	if !ok {
		return unauthorized(c, "Invalid token structure - missing subject")
	}
	subStr, ok := subClaim.(string)
	if !ok {
		return unauthorized(c, "Invalid token subject type")
	}
	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return unauthorized(c, "Invalid user ID in token")
	}

	c.Locals("userID", uint(userIDVal))

	return c.Next()
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": message,
	})
}
