package auth

import (
	"testing"

	"foodbridge/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher(policy *config.PasswordStrengthConfig) *bcryptHasher {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: 4}, // Minimum cost keeps the tests fast.
		PasswordStrength: policy,
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(nil)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher(nil)

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidatePasswordStrength_DefaultPolicy(t *testing.T) {
	hasher := newTestHasher(nil)

	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.NoError(t, hasher.ValidatePasswordStrength("long enough"))
}

func TestValidatePasswordStrength_ConfiguredPolicy(t *testing.T) {
	hasher := newTestHasher(&config.PasswordStrengthConfig{
		MinLength:        10,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "meets policy", password: "Str0ng!Password", wantErr: false},
		{name: "too short", password: "S0!a", wantErr: true},
		{name: "no uppercase", password: "str0ng!password", wantErr: true},
		{name: "no lowercase", password: "STR0NG!PASSWORD", wantErr: true},
		{name: "no digit", password: "Strong!Password", wantErr: true},
		{name: "no special", password: "Str0ngPassword", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
