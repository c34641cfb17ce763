package safety

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/matchcore/internal/proto/codec"
)

const (
	SafetyService_FileReport_FullMethodName = "/safety.SafetyService/FileReport"
)

// SafetyServiceServer is the server API for SafetyService.
// Abuse reporting.
type SafetyServiceServer interface {
	FileReport(context.Context, *FileReportRequest) (*FileReportResponse, error)
}

// UnimplementedSafetyServiceServer must be embedded for forward compatibility.
type UnimplementedSafetyServiceServer struct{}

func (UnimplementedSafetyServiceServer) FileReport(context.Context, *FileReportRequest) (*FileReportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FileReport not implemented")
}

var SafetyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "safety.SafetyService",
	HandlerType: (*SafetyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "FileReport", Handler: codec.UnaryHandler(SafetyService_FileReport_FullMethodName, SafetyServiceServer.FileReport)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterSafetyServiceServer(s grpc.ServiceRegistrar, srv SafetyServiceServer) {
	s.RegisterService(&SafetyService_ServiceDesc, srv)
}

// SafetyServiceClient is the client API for SafetyService.
type SafetyServiceClient interface {
	FileReport(ctx context.Context, in *FileReportRequest, opts ...grpc.CallOption) (*FileReportResponse, error)
}

type safetyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSafetyServiceClient(cc grpc.ClientConnInterface) SafetyServiceClient {
	return &safetyServiceClient{cc: cc}
}

func (c *safetyServiceClient) FileReport(ctx context.Context, in *FileReportRequest, opts ...grpc.CallOption) (*FileReportResponse, error) {
	return codec.Invoke[FileReportResponse](ctx, c.cc, SafetyService_FileReport_FullMethodName, in, opts...)
}
