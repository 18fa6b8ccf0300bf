package pages

import "go.uber.org/fx"

// Module provides the server-rendered site pages
var Module = fx.Module("pages",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
