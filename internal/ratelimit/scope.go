package ratelimit

import (
	"context"
	"net"
	"strconv"
	"strings"

	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

// ClientIP returns the caller's address for per-IP classes. The first
// x-forwarded-for hop wins when a proxy set it; otherwise the transport peer.
func ClientIP(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		for _, v := range md.Get("x-forwarded-for") {
			if first := strings.TrimSpace(strings.Split(v, ",")[0]); first != "" {
				return first
			}
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		addr := p.Addr.String()
		if host, _, err := net.SplitHostPort(addr); err == nil {
			return host
		}
		return addr
	}
	return "unknown"
}

// IdentityScope renders a user id as a per-identity scope.
func IdentityScope(userID uint64) string {
	return "u" + strconv.FormatUint(userID, 10)
}
