package backend

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tnyamakura/loyaltylink/internal/adapter/aiservice"
	"github.com/tnyamakura/loyaltylink/internal/adapter/restapi"
	"github.com/tnyamakura/loyaltylink/internal/adapter/supabase"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
	"github.com/tnyamakura/loyaltylink/internal/session"
)

// Module assembles the provider chains and exposes the facade to the fx
// graph.
var Module = fx.Provide(
	NewGuest,
	newChains,
	newFacade,
)

type chainParams struct {
	fx.In

	Guest    *Guest
	Supabase *supabase.Client
	Backend  *restapi.Client
	AI       *aiservice.Client
}

// newChains fixes the fallback order: guest fixtures first, then the managed
// provider where it serves the capability, then the custom backend. Surfaces
// only the backend implements chain straight from guest to backend.
func newChains(p chainParams) Chains {
	return Chains{
		Auth:       []provider.Auth{p.Supabase, p.Backend},
		Registrars: []provider.Registrar{p.Supabase},
		Points:     []provider.Points{p.Guest, p.Supabase, p.Backend},
		Ledgers:    []provider.Ledger{p.Guest, p.Backend},
		Admins:     []provider.Admin{p.Guest, p.Backend},
		Quizzes:    []provider.Quiz{p.Guest, p.Backend},
		Partners:   []provider.Partner{p.Guest, p.Backend},
		Payments:   []provider.Payments{p.Guest, p.Backend},
		QR:         []provider.QR{p.Guest, p.Backend},
		Insights:   []provider.Insights{p.Guest, p.AI},
	}
}

type facadeParams struct {
	fx.In

	Chains   Chains
	Sessions *session.Store
	AI       *aiservice.Client
	Logger   *slog.Logger
}

func newFacade(p facadeParams) *Facade {
	return NewFacade(p.Chains, p.Sessions, p.AI, p.Logger)
}
