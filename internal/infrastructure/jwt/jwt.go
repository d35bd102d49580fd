package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken         = errors.New("invalid token")
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
)

type Service struct {
	jwtSecret []byte
	method    *jwt.SigningMethodHMAC
}

func New(jwtSecret, algorithm string) (*Service, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}

	return &Service{jwtSecret: []byte(jwtSecret), method: method}, nil
}

// Claims is the decoded content of a token. Extra holds every claim other
// than sub and exp.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
	Extra     map[string]any
}

// Issue signs a token for subject. Keys of extra are merged into the payload;
// sub and exp are always set by Issue.
func (s *Service) Issue(subject string, extra map[string]any, expiresIn time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(expiresIn))

	return jwt.NewWithClaims(s.method, claims).SignedString(s.jwtSecret)
}

func (s *Service) Decode(tokenStr string) (*Claims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(token *jwt.Token) (interface{}, error) { return s.jwtSecret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}

	extra := make(map[string]any, len(claims))
	for k, v := range claims {
		if k == "sub" || k == "exp" {
			continue
		}
		extra[k] = v
	}

	return &Claims{Subject: sub, ExpiresAt: exp.Time, Extra: extra}, nil
}
