package worker

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tnyamakura/loyaltylink/internal/adapter/aiservice"
	"github.com/tnyamakura/loyaltylink/internal/adapter/restapi"
	"github.com/tnyamakura/loyaltylink/internal/adapter/supabase"
	"github.com/tnyamakura/loyaltylink/internal/config"
)

// Module exposes the connectivity monitor to the fx graph.
var Module = fx.Provide(newMonitor)

type monitorParams struct {
	fx.In

	Config   *config.Config
	Supabase *supabase.Client
	Backend  *restapi.Client
	AI       *aiservice.Client
	Logger   *slog.Logger
}

func newMonitor(p monitorParams) *Monitor {
	probers := []Prober{p.Supabase, p.Backend, p.AI}
	return NewMonitor(probers, p.Config.ProbeInterval, p.Logger)
}
