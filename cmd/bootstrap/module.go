package bootstrap

import (
	"oficina-agenda/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	SweeperModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
