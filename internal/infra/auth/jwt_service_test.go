package auth

import (
	"strings"
	"testing"
	"time"

	"jobboard/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing_with_hs512_signatures"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	cfg := &config.Config{SecretKey: config.SecretKeyConfig{Access: testSecret}}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	before := time.Now()
	token, expiresAt, err := svc.Issue("e@x.com", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, before.Add(24*time.Hour), expiresAt, 2*time.Second)

	assert.True(t, svc.Validate(token))

	sub, err := svc.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "e@x.com", sub)
}

func TestJWTService_UsesHS512(t *testing.T) {
	svc := newJWTService(testSecret, time.Hour, time.Now)

	token, _, err := svc.Issue("e@x.com", nil)
	require.NoError(t, err)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	require.NoError(t, err)
	assert.Equal(t, "HS512", parsed.Header["alg"])
}

func TestJWTService_ExtraClaimsCannotOverrideSubject(t *testing.T) {
	svc := newJWTService(testSecret, time.Hour, time.Now)

	token, _, err := svc.Issue("e@x.com", map[string]any{"sub": "attacker@x.com", "role": "EMPLOYER"})
	require.NoError(t, err)

	sub, err := svc.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "e@x.com", sub)

	claims, err := svc.parse(token)
	require.NoError(t, err)
	assert.Equal(t, "EMPLOYER", claims["role"])
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issuedAt := time.Now().Add(-48 * time.Hour)
	issuer := newJWTService(testSecret, 24*time.Hour, fixedClock(issuedAt))
	token, _, err := issuer.Issue("e@x.com", nil)
	require.NoError(t, err)

	validator := newJWTService(testSecret, 24*time.Hour, time.Now)
	assert.False(t, validator.Validate(token))

	_, err = validator.ExtractSubject(token)
	assert.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newJWTService(testSecret, time.Hour, time.Now)
	other := newJWTService("another_secret_that_does_not_match_the_first_one_at_all", time.Hour, time.Now)

	foreign, _, err := other.Issue("e@x.com", nil)
	require.NoError(t, err)

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "e@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "e@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "e@x.com",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	valid, _, err := svc.Issue("e@x.com", nil)
	require.NoError(t, err)
	tampered := valid[:strings.LastIndex(valid, ".")] + ".AAAA"

	tests := map[string]string{
		"empty":         "",
		"garbage":       "not.a.jwt",
		"wrong secret":  foreign,
		"hs256":         hs256,
		"alg none":      unsigned,
		"missing exp":   noExpiry,
		"missing sub":   noSubject,
		"bad signature": tampered,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			assert.False(t, svc.Validate(token))
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestNewJWTService_TTLFromConfig(t *testing.T) {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: testSecret},
		Auth:      &config.AuthConfig{TokenTTL: time.Hour},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, expiresAt, err := svc.Issue("e@x.com", nil)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)
}
