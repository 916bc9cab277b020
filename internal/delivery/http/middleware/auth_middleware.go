package middleware

import (
	"errors"
	"strings"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxMatriculeKey     = "matricule"
	CtxHabilitationsKey = "habilitations"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		c.Locals(CtxMatriculeKey, claims.Matricule)
		c.Locals(CtxHabilitationsKey, claims.Habilitations)

		return c.Next()
	}
}

// RequireHabilitation gates a route group on one habilitation code. Runs
// after Middleware, which populates the locals.
func (m *AuthMiddleware) RequireHabilitation(code string) fiber.Handler {
	return func(c fiber.Ctx) error {
		habs, _ := c.Locals(CtxHabilitationsKey).([]string)
		for _, h := range habs {
			if h == code {
				return c.Next()
			}
		}
		return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
