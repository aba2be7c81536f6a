package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"todoapi/models"
)

var jwtSecret = []byte(func() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	return "supersecretkey"
}())

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 24 * time.Hour
)

// ErrInvalidToken covers every way a token can fail verification: bad
// signature, expiry, malformed claims, or the wrong token type.
var ErrInvalidToken = errors.New("invalid token")

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	return string(bytes), err
}

func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hash),
		[]byte(password),
	)
	return err == nil
}

// GenerateTokenPair issues a short-lived access token and a longer-lived
// refresh token for the user.
func GenerateTokenPair(user models.User) (access string, refresh string, err error) {
	now := time.Now()

	access, err = signToken(jwt.MapClaims{
		"user_id": user.ID,
		"type":    TokenTypeAccess,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	})
	if err != nil {
		return "", "", err
	}

	refresh, err = signToken(jwt.MapClaims{
		"user_id": user.ID,
		"type":    TokenTypeRefresh,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(refreshTokenTTL).Unix(),
	})
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// ParseToken verifies the token and returns the user id it was issued
// for. Tokens of the wrong type are rejected, so a refresh token cannot
// authenticate an API request.
func ParseToken(tokenString, wantType string) (uint, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return jwtSecret, nil
		},
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	if claims["type"] != wantType {
		return 0, ErrInvalidToken
	}

	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

func signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}
