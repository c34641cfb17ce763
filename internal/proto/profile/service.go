package profile

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/matchcore/internal/proto/codec"
)

const (
	ProfileService_Register_FullMethodName    = "/profile.ProfileService/Register"
	ProfileService_Login_FullMethodName       = "/profile.ProfileService/Login"
	ProfileService_UploadPhoto_FullMethodName = "/profile.ProfileService/UploadPhoto"
	ProfileService_BlockUser_FullMethodName   = "/profile.ProfileService/BlockUser"
)

// ProfileServiceServer is the server API for ProfileService.
// Account lifecycle and profile content.
type ProfileServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	UploadPhoto(context.Context, *UploadPhotoRequest) (*UploadPhotoResponse, error)
	BlockUser(context.Context, *BlockUserRequest) (*BlockUserResponse, error)
}

// UnimplementedProfileServiceServer must be embedded for forward compatibility.
type UnimplementedProfileServiceServer struct{}

func (UnimplementedProfileServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}

func (UnimplementedProfileServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedProfileServiceServer) UploadPhoto(context.Context, *UploadPhotoRequest) (*UploadPhotoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadPhoto not implemented")
}

func (UnimplementedProfileServiceServer) BlockUser(context.Context, *BlockUserRequest) (*BlockUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BlockUser not implemented")
}

var ProfileService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "profile.ProfileService",
	HandlerType: (*ProfileServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: codec.UnaryHandler(ProfileService_Register_FullMethodName, ProfileServiceServer.Register)},
		{MethodName: "Login", Handler: codec.UnaryHandler(ProfileService_Login_FullMethodName, ProfileServiceServer.Login)},
		{MethodName: "UploadPhoto", Handler: codec.UnaryHandler(ProfileService_UploadPhoto_FullMethodName, ProfileServiceServer.UploadPhoto)},
		{MethodName: "BlockUser", Handler: codec.UnaryHandler(ProfileService_BlockUser_FullMethodName, ProfileServiceServer.BlockUser)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterProfileServiceServer(s grpc.ServiceRegistrar, srv ProfileServiceServer) {
	s.RegisterService(&ProfileService_ServiceDesc, srv)
}

// ProfileServiceClient is the client API for ProfileService.
type ProfileServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	UploadPhoto(ctx context.Context, in *UploadPhotoRequest, opts ...grpc.CallOption) (*UploadPhotoResponse, error)
	BlockUser(ctx context.Context, in *BlockUserRequest, opts ...grpc.CallOption) (*BlockUserResponse, error)
}

type profileServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProfileServiceClient(cc grpc.ClientConnInterface) ProfileServiceClient {
	return &profileServiceClient{cc: cc}
}

func (c *profileServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return codec.Invoke[RegisterResponse](ctx, c.cc, ProfileService_Register_FullMethodName, in, opts...)
}

func (c *profileServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return codec.Invoke[LoginResponse](ctx, c.cc, ProfileService_Login_FullMethodName, in, opts...)
}

func (c *profileServiceClient) UploadPhoto(ctx context.Context, in *UploadPhotoRequest, opts ...grpc.CallOption) (*UploadPhotoResponse, error) {
	return codec.Invoke[UploadPhotoResponse](ctx, c.cc, ProfileService_UploadPhoto_FullMethodName, in, opts...)
}

func (c *profileServiceClient) BlockUser(ctx context.Context, in *BlockUserRequest, opts ...grpc.CallOption) (*BlockUserResponse, error) {
	return codec.Invoke[BlockUserResponse](ctx, c.cc, ProfileService_BlockUser_FullMethodName, in, opts...)
}
