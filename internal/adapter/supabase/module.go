package supabase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tnyamakura/loyaltylink/internal/config"
)

// Module exposes the managed provider client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (*Client, error) {
	return NewClient(p.Config.SupabaseURL, p.Config.SupabaseAnonKey, p.Logger)
}
