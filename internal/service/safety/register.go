package safety

import (
	"google.golang.org/grpc"

	"github.com/oggyb/matchcore/internal/app"
	pb "github.com/oggyb/matchcore/internal/proto/safety"
)

// Registrar ties the Safety service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterSafetyServiceServer(s, NewSafetyService(r.appCtx))
}
