package auth

import (
	"time"

	"jobboard/config"
	"jobboard/internal/domain/service"
	"jobboard/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 24 * time.Hour

// jwtService is a TokenService issuing HS512 tokens whose subject is the user's email.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService builds the token service from secretKey.access and auth.tokenTTL.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return newJWTService(cfg.SecretKey.Access, ttl, time.Now), nil
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// Issue signs a token for subject valid for the configured lifetime.
func (s *jwtService) Issue(subject string, extraClaims map[string]any) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.MapClaims{}
	for k, v := range extraClaims {
		claims[k] = v
	}
	// registered claims win over extras
	claims["sub"] = subject
	claims["iat"] = issuedAt.Unix()
	claims["exp"] = expiresAt.Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return signed, time.Unix(expiresAt.Unix(), 0), nil
}

// Validate fails closed: anything other than a well-formed, HS512-signed,
// unexpired token with a subject is invalid.
func (s *jwtService) Validate(token string) (valid bool) {
	defer func() {
		if r := recover(); r != nil {
			valid = false
		}
	}()

	claims, err := s.parse(token)
	if err != nil {
		return false
	}

	sub, err := claims.GetSubject()

	return err == nil && sub != ""
}

// ExtractSubject returns the sub claim.
func (s *jwtService) ExtractSubject(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", errors.Wrap(err, "read subject")
	}

	return sub, nil
}

func (s *jwtService) parse(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	return claims, nil
}
