package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid access token")
	ErrExpiredToken  = errors.New("access token expired")
	ErrTokenMismatch = errors.New("access token does not match winner")
)

// Claims binds a private-listing access token to the winner's email and the
// original product reference.
type Claims struct {
	WinnerEmail string `json:"winner_email"`
	ProductRef  string `json:"product_ref"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	ttl       time.Duration
}

func NewService(secretKey string, ttl time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

func (s *Service) Issue(winnerEmail, productRef string, now time.Time) (string, error) {
	claims := Claims{
		WinnerEmail: winnerEmail,
		ProductRef:  productRef,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secretKey)
}

// Verify checks the signature and that the token was issued for the given
// (winner email, product reference) pair.
func (s *Service) Verify(tokenString, winnerEmail, productRef string) error {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return ErrInvalidToken
	}
	if claims.WinnerEmail != winnerEmail || claims.ProductRef != productRef {
		return ErrTokenMismatch
	}
	return nil
}
