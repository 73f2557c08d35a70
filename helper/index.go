package helper

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jos3lo89/ice-pos-server/config"
	"github.com/jos3lo89/ice-pos-server/model"
	"golang.org/x/crypto/bcrypt"
)

func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = tokenClaim.UserID
	claims["username"] = tokenClaim.Username
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
}

// GetUserFromToken reads the claim stashed by middleware.Protected
func GetUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	u := c.Locals("user")
	if u == nil {
		return model.TokenClaim{}, false
	}

	token, ok := u.(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}

	userID, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	if userID == "" {
		return model.TokenClaim{}, false
	}

	return model.TokenClaim{UserID: userID, Username: username, Role: role}, true
}
