package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims carried by an access token: the standard set
// plus the user's role, so the routing layer can gate privileged operations
// without a user lookup.
type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// PurposeClaims are the claims carried by single-purpose tokens such as the
// email verification and password reset links.
type PurposeClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateAccessJWT generates a signed access token for the given user and role.
func GenerateAccessJWT(userID string, role string, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	return signed, expiresAt, err
}

// ParseAccessJWT parses an access token string and validates its signature
// and standard claims.
func ParseAccessJWT(tokenString string, secretKey string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}

// GeneratePurposeJWT generates a signed single-purpose token bound to a user.
func GeneratePurposeJWT(userID string, purpose string, secret string, ttl time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := PurposeClaims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParsePurposeJWT parses a single-purpose token and checks that it was issued
// for the expected purpose.
func ParsePurposeJWT(tokenString string, secretKey string, expectedPurpose string) (*PurposeClaims, error) {
	claims := &PurposeClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Purpose != expectedPurpose {
		return nil, fmt.Errorf("token purpose %q does not match %q", claims.Purpose, expectedPurpose)
	}
	return claims, nil
}
