package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nt-mdc/project-management-system-backend/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the subset of token claims the rest of the system cares about.
type Claims struct {
	UserID uint64
	JTI    string
}

// NewToken mints an HS256 token for the user. The jti is returned separately
// so login can persist it for later revocation.
func NewToken(user *models.User, secret string, ttl time.Duration) (token string, jti string, err error) {
	jti = uuid.NewString()

	t := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, jwtv5.MapClaims{
		"uid":   user.ID,
		"email": user.Email,
		"jti":   jti,
		"exp":   time.Now().Add(ttl).Unix(),
	})

	token, err = t.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}
	return token, jti, nil
}

// Parse verifies the signature and expiry and extracts the claims.
func Parse(token, secret string) (*Claims, error) {
	parsed, err := jwtv5.Parse(token, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: uint64(uid), JTI: jti}, nil
}
