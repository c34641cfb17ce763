package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/oggyb/matchcore/internal/app"
	// registers the JSON wire codec
	_ "github.com/oggyb/matchcore/internal/proto/codec"
)

// NewGRPCServer builds a gRPC server with the interceptor chain and registers
// all provided services.
//
// Chain order: recovery → default deadline → error mapping, logging and
// alerting → global per-IP budget → handler. The budget sits inside the error
// interceptor so a counter-store outage there is logged, counted and reported.
func NewGRPCServer(appCtx *app.AppContext, registrars ...Registrar) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(appCtx.Logger),
			TimeoutInterceptor(appCtx.Config.GRPC.RequestTimeout),
			ErrorInterceptor(appCtx.Logger, appCtx.Metrics),
			GlobalRateInterceptor(appCtx.Limiter),
		),
	)

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}
	return grpcServer
}

// StartGRPCServer boots a gRPC server and serves until ctx is cancelled, then
// drains in-flight calls.
func StartGRPCServer(ctx context.Context, appCtx *app.AppContext, registrars ...Registrar) error {
	addr := appCtx.Config.GRPCAddr()
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	grpcServer := NewGRPCServer(appCtx, registrars...)

	go func() {
		<-ctx.Done()
		appCtx.Logger.Info("stopping gRPC server")
		grpcServer.GracefulStop()
	}()

	appCtx.Logger.Info("starting gRPC server", "addr", addr)
	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
