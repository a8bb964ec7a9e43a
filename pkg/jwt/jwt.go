package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtKey    = []byte("cafe_commerce_dev_secret")
	expiresIn = 24 * time.Hour
)

// Init overrides the signing key and token lifetime from config.
func Init(secret string, expireHours int) {
	if secret != "" {
		jwtKey = []byte(secret)
	}
	if expireHours > 0 {
		expiresIn = time.Duration(expireHours) * time.Hour
	}
}

type Claims struct {
	CustomerId int64  `json:"customer_id"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed bearer token for a customer.
func GenerateToken(customerId int64, email string) (string, error) {
	expirationTime := time.Now().Add(expiresIn)
	claims := &Claims{
		CustomerId: customerId,
		Email:      email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "cafe-commerce",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates a token and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
