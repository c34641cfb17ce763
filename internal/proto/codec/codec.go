// Package codec registers the JSON wire codec used by every service in this
// module and provides the glue hand-written service descriptors need.
//
// Clients select it with grpc.CallContentSubtype(codec.Name); the server picks
// it from the request content type.
package codec

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// Name is the gRPC content subtype ("application/grpc+json").
const Name = "json"

type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (Codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (Codec) Name() string { return Name }

func init() {
	encoding.RegisterCodec(Codec{})
}

// UnaryHandler adapts a typed method expression such as
// ExploreServiceServer.PutDecision into a grpc.MethodHandler, running it
// through the server's interceptor chain.
func UnaryHandler[S, Req, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Invoke performs a unary call with the JSON codec selected.
func Invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
