package explore

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/matchcore/internal/proto/codec"
)

const (
	ExploreService_PutDecision_FullMethodName     = "/explore.ExploreService/PutDecision"
	ExploreService_ListLikedYou_FullMethodName    = "/explore.ExploreService/ListLikedYou"
	ExploreService_ListNewLikedYou_FullMethodName = "/explore.ExploreService/ListNewLikedYou"
	ExploreService_CountLikedYou_FullMethodName   = "/explore.ExploreService/CountLikedYou"
	ExploreService_ListCandidates_FullMethodName  = "/explore.ExploreService/ListCandidates"
	ExploreService_ListMatches_FullMethodName     = "/explore.ExploreService/ListMatches"
	ExploreService_Unmatch_FullMethodName         = "/explore.ExploreService/Unmatch"
	ExploreService_SendMessage_FullMethodName     = "/explore.ExploreService/SendMessage"
)

// ExploreServiceServer is the server API for ExploreService.
// Swipes, likes received, candidates, matches and match messaging.
type ExploreServiceServer interface {
	PutDecision(context.Context, *PutDecisionRequest) (*PutDecisionResponse, error)
	ListLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error)
	ListNewLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error)
	CountLikedYou(context.Context, *CountLikedYouRequest) (*CountLikedYouResponse, error)
	ListCandidates(context.Context, *ListCandidatesRequest) (*ListCandidatesResponse, error)
	ListMatches(context.Context, *ListMatchesRequest) (*ListMatchesResponse, error)
	Unmatch(context.Context, *UnmatchRequest) (*UnmatchResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
}

// UnimplementedExploreServiceServer must be embedded for forward compatibility.
type UnimplementedExploreServiceServer struct{}

func (UnimplementedExploreServiceServer) PutDecision(context.Context, *PutDecisionRequest) (*PutDecisionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PutDecision not implemented")
}

func (UnimplementedExploreServiceServer) ListLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLikedYou not implemented")
}

func (UnimplementedExploreServiceServer) ListNewLikedYou(context.Context, *ListLikedYouRequest) (*ListLikedYouResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListNewLikedYou not implemented")
}

func (UnimplementedExploreServiceServer) CountLikedYou(context.Context, *CountLikedYouRequest) (*CountLikedYouResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CountLikedYou not implemented")
}

func (UnimplementedExploreServiceServer) ListCandidates(context.Context, *ListCandidatesRequest) (*ListCandidatesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCandidates not implemented")
}

func (UnimplementedExploreServiceServer) ListMatches(context.Context, *ListMatchesRequest) (*ListMatchesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMatches not implemented")
}

func (UnimplementedExploreServiceServer) Unmatch(context.Context, *UnmatchRequest) (*UnmatchResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Unmatch not implemented")
}

func (UnimplementedExploreServiceServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendMessage not implemented")
}

var ExploreService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "explore.ExploreService",
	HandlerType: (*ExploreServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PutDecision", Handler: codec.UnaryHandler(ExploreService_PutDecision_FullMethodName, ExploreServiceServer.PutDecision)},
		{MethodName: "ListLikedYou", Handler: codec.UnaryHandler(ExploreService_ListLikedYou_FullMethodName, ExploreServiceServer.ListLikedYou)},
		{MethodName: "ListNewLikedYou", Handler: codec.UnaryHandler(ExploreService_ListNewLikedYou_FullMethodName, ExploreServiceServer.ListNewLikedYou)},
		{MethodName: "CountLikedYou", Handler: codec.UnaryHandler(ExploreService_CountLikedYou_FullMethodName, ExploreServiceServer.CountLikedYou)},
		{MethodName: "ListCandidates", Handler: codec.UnaryHandler(ExploreService_ListCandidates_FullMethodName, ExploreServiceServer.ListCandidates)},
		{MethodName: "ListMatches", Handler: codec.UnaryHandler(ExploreService_ListMatches_FullMethodName, ExploreServiceServer.ListMatches)},
		{MethodName: "Unmatch", Handler: codec.UnaryHandler(ExploreService_Unmatch_FullMethodName, ExploreServiceServer.Unmatch)},
		{MethodName: "SendMessage", Handler: codec.UnaryHandler(ExploreService_SendMessage_FullMethodName, ExploreServiceServer.SendMessage)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterExploreServiceServer(s grpc.ServiceRegistrar, srv ExploreServiceServer) {
	s.RegisterService(&ExploreService_ServiceDesc, srv)
}

// ExploreServiceClient is the client API for ExploreService.
type ExploreServiceClient interface {
	PutDecision(ctx context.Context, in *PutDecisionRequest, opts ...grpc.CallOption) (*PutDecisionResponse, error)
	ListLikedYou(ctx context.Context, in *ListLikedYouRequest, opts ...grpc.CallOption) (*ListLikedYouResponse, error)
	ListNewLikedYou(ctx context.Context, in *ListLikedYouRequest, opts ...grpc.CallOption) (*ListLikedYouResponse, error)
	CountLikedYou(ctx context.Context, in *CountLikedYouRequest, opts ...grpc.CallOption) (*CountLikedYouResponse, error)
	ListCandidates(ctx context.Context, in *ListCandidatesRequest, opts ...grpc.CallOption) (*ListCandidatesResponse, error)
	ListMatches(ctx context.Context, in *ListMatchesRequest, opts ...grpc.CallOption) (*ListMatchesResponse, error)
	Unmatch(ctx context.Context, in *UnmatchRequest, opts ...grpc.CallOption) (*UnmatchResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
}

type exploreServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExploreServiceClient(cc grpc.ClientConnInterface) ExploreServiceClient {
	return &exploreServiceClient{cc: cc}
}

func (c *exploreServiceClient) PutDecision(ctx context.Context, in *PutDecisionRequest, opts ...grpc.CallOption) (*PutDecisionResponse, error) {
	return codec.Invoke[PutDecisionResponse](ctx, c.cc, ExploreService_PutDecision_FullMethodName, in, opts...)
}

func (c *exploreServiceClient) ListLikedYou(ctx context.Context, in *ListLikedYouRequest, opts ...grpc.CallOption) (*ListLikedYouResponse, error) {
	return codec.Invoke[ListLikedYouResponse](ctx, c.cc, ExploreService_ListLikedYou_FullMethodName, in, opts...)
}

func (c *exploreServiceClient) ListNewLikedYou(ctx context.Context, in *ListLikedYouRequest, opts ...grpc.CallOption) (*ListLikedYouResponse, error) {
	return codec.Invoke[ListLikedYouResponse](ctx, c.cc, ExploreService_ListNewLikedYou_FullMethodName, in, opts...)
}

func (c *exploreServiceClient) CountLikedYou(ctx context.Context, in *CountLikedYouRequest, opts ...grpc.CallOption) (*CountLikedYouResponse, error) {
	return codec.Invoke[CountLikedYouResponse](ctx, c.cc, ExploreService_CountLikedYou_FullMethodName, in, opts...)
}

func (c *exploreServiceClient) ListCandidates(ctx context.Context, in *ListCandidatesRequest, opts ...grpc.CallOption) (*ListCandidatesResponse, error) {
	return codec.Invoke[ListCandidatesResponse](ctx, c.cc, ExploreService_ListCandidates_FullMethodName, in, opts...)
}

func (c *exploreServiceClient) ListMatches(ctx context.Context, in *ListMatchesRequest, opts ...grpc.CallOption) (*ListMatchesResponse, error) {
	return codec.Invoke[ListMatchesResponse](ctx, c.cc, ExploreService_ListMatches_FullMethodName, in, opts...)
}

func (c *exploreServiceClient) Unmatch(ctx context.Context, in *UnmatchRequest, opts ...grpc.CallOption) (*UnmatchResponse, error) {
	return codec.Invoke[UnmatchResponse](ctx, c.cc, ExploreService_Unmatch_FullMethodName, in, opts...)
}

func (c *exploreServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	return codec.Invoke[SendMessageResponse](ctx, c.cc, ExploreService_SendMessage_FullMethodName, in, opts...)
}
