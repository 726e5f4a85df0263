package restapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tnyamakura/loyaltylink/internal/config"
	"github.com/tnyamakura/loyaltylink/internal/session"
)

// Module exposes the backend client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config  *config.Config
	Session *session.Store
	Logger  *slog.Logger
}

func newClient(p clientParams) (*Client, error) {
	return NewClient(p.Config.BackendURL, p.Session, p.Logger)
}
