package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sanashahul/GamiSMS-sub000/internal/config"
)

// Claims represents the installation token claims. There are no accounts or
// roles; the token only pins an anonymous installation identity so each
// device reads and writes its own storage keys.
type Claims struct {
	InstallationID string `json:"installation_id"`
	jwt.RegisteredClaims
}

// GenerateInstallationToken signs a long-lived token for a fresh or existing
// installation ID.
func GenerateInstallationToken(installationID string, cfg *config.Config) (string, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.TokenExpiryHours) * time.Hour)
	claims := &Claims{
		InstallationID: installationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   installationID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign installation token: %w", err)
	}
	return tokenString, nil
}

// ValidateInstallationToken validates a token and returns its claims.
func ValidateInstallationToken(tokenString string, secretKey string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.InstallationID == "" {
		return nil, fmt.Errorf("token has no installation id")
	}
	return claims, nil
}
