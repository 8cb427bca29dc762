package utils

import (
	"time"

	"creator-dashboard/infrastructure/logger"

	"github.com/golang-jwt/jwt"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

func GenerateToken(payload map[string]interface{}, secretKey string) (string, error) {
	var claims jwt.MapClaims = payload
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		return "", err
	}
	return tokenString, nil
}

// GenerateUserToken signs a token for userID valid for ttl, as issued by the auth provider.
func GenerateUserToken(userID, email, secretKey string, ttl time.Duration) (string, error) {
	now := GetCurrentTime()
	return GenerateToken(map[string]interface{}{
		"sub":   userID,
		"email": email,
		"role":  "authenticated",
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}, secretKey)
}
