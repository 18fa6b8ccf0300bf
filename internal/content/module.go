package content

import "go.uber.org/fx"

var Module = fx.Module("content",
	fx.Provide(NewSite),
)
