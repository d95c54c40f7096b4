package bootstrap

import (
	"time"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, tokenDuration), nil
}
