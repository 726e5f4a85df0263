package session

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tnyamakura/loyaltylink/internal/config"
)

// Module exposes the session store to the fx graph.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (*Store, error) {
	return New(p.Config.SessionFile, p.Logger)
}
