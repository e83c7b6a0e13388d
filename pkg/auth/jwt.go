package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(operatorID, businessID int, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("your-secret-key")

// Claims carry the authenticated operator and the business (tenant) they act
// for. Token issuance lives in the identity service; here tokens are only
// validated.
type Claims struct {
	OperatorID int `json:"operator_id"`
	BusinessID int `json:"business_id"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(operatorID, businessID int, expirationTime time.Time) (string, error) {
	claims := Claims{
		OperatorID: operatorID,
		BusinessID: businessID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "loyalcore",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.OperatorID == 0 || claims.BusinessID == 0 || claims.Issuer != "loyalcore" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
