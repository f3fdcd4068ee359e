package marketplacev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const IdentityService_ServiceName = "marketplace.v1.IdentityService"

const (
	IdentityService_RegisterCustomer_FullMethodName = "/marketplace.v1.IdentityService/RegisterCustomer"
	IdentityService_RegisterProvider_FullMethodName = "/marketplace.v1.IdentityService/RegisterProvider"
	IdentityService_Login_FullMethodName            = "/marketplace.v1.IdentityService/Login"
	IdentityService_WhoAmI_FullMethodName           = "/marketplace.v1.IdentityService/WhoAmI"
)

// IdentityServiceServer — серверная часть marketplace.v1.IdentityService.
type IdentityServiceServer interface {
	RegisterCustomer(context.Context, *RegisterCustomerRequest) (*CustomerResponse, error)
	RegisterProvider(context.Context, *RegisterProviderRequest) (*ProviderResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	WhoAmI(context.Context, *WhoAmIRequest) (*WhoAmIResponse, error)
}

// UnimplementedIdentityServiceServer отвечает Unimplemented на все методы; встраивается в реализации.
type UnimplementedIdentityServiceServer struct{}

func (UnimplementedIdentityServiceServer) RegisterCustomer(context.Context, *RegisterCustomerRequest) (*CustomerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterCustomer not implemented")
}

func (UnimplementedIdentityServiceServer) RegisterProvider(context.Context, *RegisterProviderRequest) (*ProviderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterProvider not implemented")
}

func (UnimplementedIdentityServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedIdentityServiceServer) WhoAmI(context.Context, *WhoAmIRequest) (*WhoAmIResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method WhoAmI not implemented")
}

func RegisterIdentityServiceServer(s grpc.ServiceRegistrar, srv IdentityServiceServer) {
	s.RegisterService(&IdentityService_ServiceDesc, srv)
}

var IdentityService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: IdentityService_ServiceName,
	HandlerType: (*IdentityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterCustomer",
			Handler:    unary(IdentityService_RegisterCustomer_FullMethodName, IdentityServiceServer.RegisterCustomer),
		},
		{
			MethodName: "RegisterProvider",
			Handler:    unary(IdentityService_RegisterProvider_FullMethodName, IdentityServiceServer.RegisterProvider),
		},
		{
			MethodName: "Login",
			Handler:    unary(IdentityService_Login_FullMethodName, IdentityServiceServer.Login),
		},
		{
			MethodName: "WhoAmI",
			Handler:    unary(IdentityService_WhoAmI_FullMethodName, IdentityServiceServer.WhoAmI),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// IdentityServiceClient — клиент marketplace.v1.IdentityService; все вызовы идут с JSON-кодеком.
type IdentityServiceClient interface {
	RegisterCustomer(ctx context.Context, in *RegisterCustomerRequest, opts ...grpc.CallOption) (*CustomerResponse, error)
	RegisterProvider(ctx context.Context, in *RegisterProviderRequest, opts ...grpc.CallOption) (*ProviderResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	WhoAmI(ctx context.Context, in *WhoAmIRequest, opts ...grpc.CallOption) (*WhoAmIResponse, error)
}

type identityServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIdentityServiceClient(cc grpc.ClientConnInterface) IdentityServiceClient {
	return &identityServiceClient{cc: cc}
}

func (c *identityServiceClient) RegisterCustomer(ctx context.Context, in *RegisterCustomerRequest, opts ...grpc.CallOption) (*CustomerResponse, error) {
	return invoke[CustomerResponse](ctx, c.cc, IdentityService_RegisterCustomer_FullMethodName, in, opts)
}

func (c *identityServiceClient) RegisterProvider(ctx context.Context, in *RegisterProviderRequest, opts ...grpc.CallOption) (*ProviderResponse, error) {
	return invoke[ProviderResponse](ctx, c.cc, IdentityService_RegisterProvider_FullMethodName, in, opts)
}

func (c *identityServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, IdentityService_Login_FullMethodName, in, opts)
}

func (c *identityServiceClient) WhoAmI(ctx context.Context, in *WhoAmIRequest, opts ...grpc.CallOption) (*WhoAmIResponse, error) {
	return invoke[WhoAmIResponse](ctx, c.cc, IdentityService_WhoAmI_FullMethodName, in, opts)
}
