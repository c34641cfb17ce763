package explore

import (
	"google.golang.org/grpc"

	"github.com/oggyb/matchcore/internal/app"
	pb "github.com/oggyb/matchcore/internal/proto/explore"
)

// Registrar ties the Explore service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Explore service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register builds the service (repositories and match engine over the shared
// DB) and attaches it to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterExploreServiceServer(s, NewExploreService(r.appCtx))
}
