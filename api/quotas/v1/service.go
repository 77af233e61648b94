package quotasv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "quotas.v1.Quotas"

const (
	Quotas_Check_FullMethodName          = "/quotas.v1.Quotas/Check"
	Quotas_Inspect_FullMethodName        = "/quotas.v1.Quotas/Inspect"
	Quotas_Reset_FullMethodName          = "/quotas.v1.Quotas/Reset"
	Quotas_Flush_FullMethodName          = "/quotas.v1.Quotas/Flush"
	Quotas_Expiry_FullMethodName         = "/quotas.v1.Quotas/Expiry"
	Quotas_ListCategories_FullMethodName = "/quotas.v1.Quotas/ListCategories"
	Quotas_SetCategory_FullMethodName    = "/quotas.v1.Quotas/SetCategory"
	Quotas_DeleteCategory_FullMethodName = "/quotas.v1.Quotas/DeleteCategory"
)

// QuotasClient - клиент сервиса квот. Все вызовы идут с content-subtype json.
type QuotasClient interface {
	Check(ctx context.Context, in *CheckRequest, opts ...grpc.CallOption) (*CheckResponse, error)
	Inspect(ctx context.Context, in *InspectRequest, opts ...grpc.CallOption) (*InspectResponse, error)
	Reset(ctx context.Context, in *ResetRequest, opts ...grpc.CallOption) (*ResetResponse, error)
	Flush(ctx context.Context, in *FlushRequest, opts ...grpc.CallOption) (*FlushResponse, error)
	Expiry(ctx context.Context, in *ExpiryRequest, opts ...grpc.CallOption) (*ExpiryResponse, error)
	ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	SetCategory(ctx context.Context, in *SetCategoryRequest, opts ...grpc.CallOption) (*SetCategoryResponse, error)
	DeleteCategory(ctx context.Context, in *DeleteCategoryRequest, opts ...grpc.CallOption) (*DeleteCategoryResponse, error)
}

type quotasClient struct {
	cc grpc.ClientConnInterface
}

func NewQuotasClient(cc grpc.ClientConnInterface) QuotasClient {
	return &quotasClient{cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *quotasClient) Check(ctx context.Context, in *CheckRequest, opts ...grpc.CallOption) (*CheckResponse, error) {
	out := new(CheckResponse)
	if err := c.cc.Invoke(ctx, Quotas_Check_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotasClient) Inspect(ctx context.Context, in *InspectRequest, opts ...grpc.CallOption) (*InspectResponse, error) {
	out := new(InspectResponse)
	if err := c.cc.Invoke(ctx, Quotas_Inspect_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotasClient) Reset(ctx context.Context, in *ResetRequest, opts ...grpc.CallOption) (*ResetResponse, error) {
	out := new(ResetResponse)
	if err := c.cc.Invoke(ctx, Quotas_Reset_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotasClient) Flush(ctx context.Context, in *FlushRequest, opts ...grpc.CallOption) (*FlushResponse, error) {
	out := new(FlushResponse)
	if err := c.cc.Invoke(ctx, Quotas_Flush_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotasClient) Expiry(ctx context.Context, in *ExpiryRequest, opts ...grpc.CallOption) (*ExpiryResponse, error) {
	out := new(ExpiryResponse)
	if err := c.cc.Invoke(ctx, Quotas_Expiry_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotasClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	out := new(ListCategoriesResponse)
	if err := c.cc.Invoke(ctx, Quotas_ListCategories_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotasClient) SetCategory(ctx context.Context, in *SetCategoryRequest, opts ...grpc.CallOption) (*SetCategoryResponse, error) {
	out := new(SetCategoryResponse)
	if err := c.cc.Invoke(ctx, Quotas_SetCategory_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quotasClient) DeleteCategory(ctx context.Context, in *DeleteCategoryRequest, opts ...grpc.CallOption) (*DeleteCategoryResponse, error) {
	out := new(DeleteCategoryResponse)
	if err := c.cc.Invoke(ctx, Quotas_DeleteCategory_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// QuotasServer - серверная часть сервиса квот.
type QuotasServer interface {
	Check(context.Context, *CheckRequest) (*CheckResponse, error)
	Inspect(context.Context, *InspectRequest) (*InspectResponse, error)
	Reset(context.Context, *ResetRequest) (*ResetResponse, error)
	Flush(context.Context, *FlushRequest) (*FlushResponse, error)
	Expiry(context.Context, *ExpiryRequest) (*ExpiryResponse, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	SetCategory(context.Context, *SetCategoryRequest) (*SetCategoryResponse, error)
	DeleteCategory(context.Context, *DeleteCategoryRequest) (*DeleteCategoryResponse, error)
	mustEmbedUnimplementedQuotasServer()
}

// UnimplementedQuotasServer встраивается в реализации для совместимости при добавлении методов.
type UnimplementedQuotasServer struct{}

func (UnimplementedQuotasServer) Check(context.Context, *CheckRequest) (*CheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Check not implemented")
}

func (UnimplementedQuotasServer) Inspect(context.Context, *InspectRequest) (*InspectResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Inspect not implemented")
}

func (UnimplementedQuotasServer) Reset(context.Context, *ResetRequest) (*ResetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Reset not implemented")
}

func (UnimplementedQuotasServer) Flush(context.Context, *FlushRequest) (*FlushResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Flush not implemented")
}

func (UnimplementedQuotasServer) Expiry(context.Context, *ExpiryRequest) (*ExpiryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Expiry not implemented")
}

func (UnimplementedQuotasServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}

func (UnimplementedQuotasServer) SetCategory(context.Context, *SetCategoryRequest) (*SetCategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetCategory not implemented")
}

func (UnimplementedQuotasServer) DeleteCategory(context.Context, *DeleteCategoryRequest) (*DeleteCategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCategory not implemented")
}

func (UnimplementedQuotasServer) mustEmbedUnimplementedQuotasServer() {}

func RegisterQuotasServer(s grpc.ServiceRegistrar, srv QuotasServer) {
	s.RegisterService(&Quotas_ServiceDesc, srv)
}

func _Quotas_Check_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotasServer).Check(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Quotas_Check_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QuotasServer).Check(ctx, req.(*CheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Quotas_Inspect_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(InspectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotasServer).Inspect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Quotas_Inspect_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QuotasServer).Inspect(ctx, req.(*InspectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Quotas_Reset_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ResetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotasServer).Reset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Quotas_Reset_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QuotasServer).Reset(ctx, req.(*ResetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Quotas_Flush_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FlushRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotasServer).Flush(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Quotas_Flush_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QuotasServer).Flush(ctx, req.(*FlushRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Quotas_Expiry_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ExpiryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotasServer).Expiry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Quotas_Expiry_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QuotasServer).Expiry(ctx, req.(*ExpiryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Quotas_ListCategories_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListCategoriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotasServer).ListCategories(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Quotas_ListCategories_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QuotasServer).ListCategories(ctx, req.(*ListCategoriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Quotas_SetCategory_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetCategoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotasServer).SetCategory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Quotas_SetCategory_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QuotasServer).SetCategory(ctx, req.(*SetCategoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Quotas_DeleteCategory_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteCategoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuotasServer).DeleteCategory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Quotas_DeleteCategory_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(QuotasServer).DeleteCategory(ctx, req.(*DeleteCategoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Quotas_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*QuotasServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Check",
			Handler:    _Quotas_Check_Handler,
		},
		{
			MethodName: "Inspect",
			Handler:    _Quotas_Inspect_Handler,
		},
		{
			MethodName: "Reset",
			Handler:    _Quotas_Reset_Handler,
		},
		{
			MethodName: "Flush",
			Handler:    _Quotas_Flush_Handler,
		},
		{
			MethodName: "Expiry",
			Handler:    _Quotas_Expiry_Handler,
		},
		{
			MethodName: "ListCategories",
			Handler:    _Quotas_ListCategories_Handler,
		},
		{
			MethodName: "SetCategory",
			Handler:    _Quotas_SetCategory_Handler,
		},
		{
			MethodName: "DeleteCategory",
			Handler:    _Quotas_DeleteCategory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "quotas/v1/quotas.go",
}
