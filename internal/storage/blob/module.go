package blob

import (
	"go.uber.org/fx"

	"github.com/greenloop/cleanearth/internal/config"
)

// Module wires the filesystem photo store.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
}

func newStore(p storeParams) (*Store, error) {
	return NewStore(p.Config.UploadDir)
}
