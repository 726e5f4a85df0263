package aiservice

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tnyamakura/loyaltylink/internal/config"
)

// Module exposes the analytics client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (*Client, error) {
	return NewClient(p.Config.AIServiceURL, p.Logger)
}
