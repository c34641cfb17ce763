package server

import (
	"google.golang.org/grpc"

	"github.com/oggyb/matchcore/internal/app"
	"github.com/oggyb/matchcore/internal/service/explore"
	"github.com/oggyb/matchcore/internal/service/profile"
	"github.com/oggyb/matchcore/internal/service/safety"
)

// Registrar is a common interface for all gRPC service registrars
type Registrar interface {
	Register(s *grpc.Server)
}

// DefaultRegistrars returns every service this binary exposes.
func DefaultRegistrars(appCtx *app.AppContext) []Registrar {
	return []Registrar{
		explore.NewRegistrar(appCtx),
		profile.NewRegistrar(appCtx),
		safety.NewRegistrar(appCtx),
	}
}
