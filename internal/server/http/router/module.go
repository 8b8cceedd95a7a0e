package router

import "go.uber.org/fx"

// Module registers the gin engine construction for the fx runtime.
var Module = fx.Provide(Setup)
