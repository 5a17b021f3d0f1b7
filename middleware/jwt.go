package middleware

import (
	"fmt"
	"sevakiosk/config"
	"sevakiosk/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GenerateTokenPair mints the access/refresh credential pair issued after a
// successful OTP verification. The access token carries the kiosk session's
// JTI so logout can close the session row.
func GenerateTokenPair(user *models.User) (access string, refresh string, jti string, err error) {
	jti = uuid.NewString()
	now := time.Now()

	phone := ""
	if user.Phone != nil {
		phone = *user.Phone
	}

	accessClaims := jwt.MapClaims{
		"userId": user.ID,
		"role":   user.Role,
		"phone":  phone,
		"typ":    "access",
		"jti":    jti,
		"iat":    now.Unix(),
		"exp":    now.Add(time.Duration(config.AppConfig.AccessTokenMinutes) * time.Minute).Unix(),
	}
	refreshClaims := jwt.MapClaims{
		"userId": user.ID,
		"typ":    "refresh",
		"jti":    jti,
		"iat":    now.Unix(),
		"exp":    now.Add(time.Duration(config.AppConfig.RefreshTokenHours) * time.Hour).Unix(),
	}

	jwtSecret := []byte(config.AppConfig.JWTKey)

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(jwtSecret)
	if err != nil {
		return "", "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(jwtSecret)
	if err != nil {
		return "", "", "", err
	}
	return access, refresh, jti, nil
}

// ParseRefreshToken validates a refresh token and returns the user ID it was
// issued for.
func ParseRefreshToken(tokenString string) (uint, error) {
	claims, err := parseToken(tokenString)
	if err != nil {
		return 0, err
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return 0, fmt.Errorf("not a refresh token")
	}
	userID, ok := claims["userId"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid token payload")
	}
	return uint(userID), nil
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token payload")
	}
	return claims, nil
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	tokenString := authHeader[len("Bearer "):]

	claims, err := parseToken(tokenString)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	// Refresh tokens are not valid as bearer credentials.
	if typ, _ := claims["typ"].(string); typ != "access" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	c.Locals("userId", uint(userID))
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}
	if jti, ok := claims["jti"].(string); ok {
		c.Locals("tokenId", jti)
	}

	return c.Next()
}

// RequireRole returns a middleware that allows only the given roles through.
// It must run after JWTMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
