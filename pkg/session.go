package pkg

import (
	"errors"
	"fmt"
	"time"

	"rent-a-car-web/config"
	"rent-a-car-web/models"

	"github.com/golang-jwt/jwt/v5"
)

// Nombre de la cookie de sesión, mismo nombre que usaba la clave de localStorage
const SessionCookie = "user-info"

// Tiempo de expiración de la sesión (24 horas)
const TokenExpiration = time.Hour * 24

// GenerateSessionToken firma el usuario de la sesión dentro de un token JWT
func GenerateSessionToken(user models.User) (string, error) {
	secret := []byte(config.LoadConfig().JwtSecret)

	now := time.Now()
	expirationTime := now.Add(TokenExpiration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Type,
		"name":    user.Name,
		"email":   user.Email,
		"dni":     user.Dni,
		"iat":     now.Unix(),
		"exp":     expirationTime.Unix(),
	})

	t, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return t, nil
}

// GetUserFromToken extrae el usuario de la sesión del token JWT
func GetUserFromToken(tokenString string) (models.User, error) {
	secret := []byte(config.LoadConfig().JwtSecret)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.User{}, fmt.Errorf("sesión expirada")
		}
		return models.User{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.User{}, jwt.ErrSignatureInvalid
	}

	var user models.User
	// Los números en MapClaims llegan como float64
	if id, ok := claims["user_id"].(float64); ok {
		user.ID = int(id)
	}
	user.Type, _ = claims["role"].(string)
	user.Name, _ = claims["name"].(string)
	user.Email, _ = claims["email"].(string)
	user.Dni, _ = claims["dni"].(string)

	return user, nil
}
