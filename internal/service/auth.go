package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const defaultTokenTTL = 24 * time.Hour

type playerClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// AuthService maps HS256 tokens to players. With an empty secret every token is rejected.
type AuthService struct {
	secretKey []byte
	now       func() time.Time
}

func NewAuthService(secretKey string) *AuthService {
	return &AuthService{
		secretKey: []byte(secretKey),
		now:       time.Now,
	}
}

func (that *AuthService) Enabled() bool {
	return len(that.secretKey) > 0
}

// GenerateToken signs a token for player. A zero ttl means one day.
func (that *AuthService) GenerateToken(player *entity.Player, ttl time.Duration) (string, error) {
	if !that.Enabled() {
		return "", fmt.Errorf("sign token: %w", apperror.ErrInvalidToken)
	}

	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := that.now()
	claims := playerClaims{
		Name: player.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   player.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(that.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken validates tokenString and returns the player it names.
func (that *AuthService) ParseToken(tokenString string) (*entity.Player, error) {
	if tokenString == "" {
		return nil, apperror.ErrMissingToken
	}

	if !that.Enabled() {
		return nil, apperror.ErrInvalidToken
	}

	claims := &playerClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return that.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(that.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Join(apperror.ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: no subject", apperror.ErrInvalidToken)
	}

	return &entity.Player{ID: claims.Subject, DisplayName: claims.Name}, nil
}
