package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/util"
)

const AccessTokenExpirationTime = time.Minute * 15

type JWTClaim struct {
	Id    string          `json:"id"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Generate auth token for new user session
func GenerateJWT(id, email string, role models.UserRole) (string, int64, error) {
	expirationTime := time.Now().Add(AccessTokenExpirationTime)
	jwtKey := util.LoadEnvFor("SECRET")

	claims := JWTClaim{
		Id:    id,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// Validate a signed jwt token and its expiration time.
func ValidateToken(signedToken string) (claim JWTClaim, err error) {
	jwtKey := util.LoadEnvFor("SECRET")
	token, err := jwt.ParseWithClaims(
		signedToken,
		&JWTClaim{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtKey), nil
		},
	)
	if err != nil {
		return
	}

	claims, ok := token.Claims.(*JWTClaim)
	if !ok {
		err = errors.New("couldn't parse claims")
		return
	}

	return *claims, nil
}
