package bootstrap

import (
	"travel-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	RedisModule,
	JWTModule,
	NotifyModule,
	components.PersistenceModule,
	components.ServicesModule,
	components.UseCaseModule,
	components.HandlerModule,
)
