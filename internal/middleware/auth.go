package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/careslot/careslot-backend/internal/auth"
	"github.com/careslot/careslot-backend/internal/config"
	"github.com/careslot/careslot-backend/internal/dto"
	"github.com/careslot/careslot-backend/internal/models"
	"github.com/careslot/careslot-backend/internal/store"
)

// HeaderAuthToken carries the session credential, with or without a
// "Bearer " prefix.
const HeaderAuthToken = "x-auth-token"

const localsUserKey = "currentUser"

// Authenticate validates the presented credential and resolves it to a live
// user record. It is a pure boundary check: role and ownership rules are
// applied downstream by the policy.
func Authenticate(cfg *config.Config, users store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(HeaderAuthToken))
		raw = strings.TrimPrefix(raw, "Bearer ")
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "missing credential",
			})
		}

		claims, err := auth.Parse(raw, cfg.JWTSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "invalid or expired credential",
			})
		}

		id, err := uuid.Parse(claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "invalid or expired credential",
			})
		}

		user, err := users.FindByID(c.Context(), id)
		if err != nil {
			// The credential may outlive its user.
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Message: "user no longer exists",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Message: "internal server error",
				Error:   err.Error(),
			})
		}

		user.Password = ""
		c.Locals(localsUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user resolved by Authenticate.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(localsUserKey).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}
