package server

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/metrics"
	"github.com/oggyb/matchcore/internal/ratelimit"
)

// RecoveryInterceptor turns a handler panic into codes.Internal and reports it.
func RecoveryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in handler", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetTag("grpc.method", info.FullMethod)
				hub.Recover(r)
				err = status.Error(codes.Internal, fmt.Sprintf("internal error in %s", info.FullMethod))
			}
		}()
		return handler(ctx, req)
	}
}

// TimeoutInterceptor applies def to requests that arrive without a deadline.
// A caller-supplied deadline always wins.
func TimeoutInterceptor(def time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := ctx.Deadline(); ok || def <= 0 {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, def)
		defer cancel()
		return handler(ctx, req)
	}
}

// GlobalRateInterceptor charges every request to the caller IP's global budget.
func GlobalRateInterceptor(limiter *ratelimit.Governor) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := limiter.Check(ctx, ratelimit.ClassGlobal, ratelimit.ClientIP(ctx)); err != nil {
			return nil, svcErr.Map(err)
		}
		return handler(ctx, req)
	}
}

// ErrorInterceptor maps any stray error to a status, logs failures and sends
// server-side ones (Internal, Unavailable, Unknown, DataLoss) to Sentry.
func ErrorInterceptor(logger *slog.Logger, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err == nil {
			logger.Debug("rpc ok", "method", info.FullMethod, "duration", time.Since(start))
			return resp, nil
		}

		err = svcErr.Map(err)
		code := status.Code(err)
		m.RPCError(info.FullMethod, code.String())

		attrs := []any{
			"method", info.FullMethod,
			"code", code.String(),
			"reason", svcErr.ReasonOf(err),
			"duration", time.Since(start),
			"err", err,
		}
		if !isServerFault(code) {
			logger.Info("rpc rejected", attrs...)
			return nil, err
		}

		logger.Error("rpc failed", attrs...)
		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetTag("grpc.method", info.FullMethod)
		hub.Scope().SetTag("grpc.code", code.String())
		hub.CaptureException(err)
		return nil, err
	}
}

func isServerFault(c codes.Code) bool {
	switch c {
	case codes.Internal, codes.Unavailable, codes.Unknown, codes.DataLoss:
		return true
	}
	return false
}
