package catalog

import "go.uber.org/fx"

// Module provides the asset catalog: source, service and JSON API
var Module = fx.Module("catalog",
	fx.Provide(NewSource),
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
