package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpggrid.placement.v1alpha1.PlacementService"

// PlacementServiceServer is the server API for the placement service
type PlacementServiceServer interface {
	CreateSession(context.Context, *CreateSessionRequest) (*SessionResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*SessionResponse, error)
	DeleteSession(context.Context, *DeleteSessionRequest) (*DeleteSessionResponse, error)
	SelectTemplate(context.Context, *SelectTemplateRequest) (*SessionResponse, error)
	Rotate(context.Context, *RotateRequest) (*SessionResponse, error)
	SwitchGrid(context.Context, *SwitchGridRequest) (*SwitchGridResponse, error)
	Place(context.Context, *PlaceRequest) (*PlacementResponse, error)
	Remove(context.Context, *RemoveRequest) (*PlacementResponse, error)
	ApplyLayout(context.Context, *ApplyLayoutRequest) (*ApplyLayoutResponse, error)
	SaveSnapshot(context.Context, *SaveSnapshotRequest) (*SaveSnapshotResponse, error)
	LoadSnapshot(context.Context, *LoadSnapshotRequest) (*LoadSnapshotResponse, error)
}

// RegisterPlacementServiceServer registers srv on s
func RegisterPlacementServiceServer(s grpc.ServiceRegistrar, srv PlacementServiceServer) {
	s.RegisterService(&PlacementServiceDesc, srv)
}

func _PlacementService_CreateSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlacementServiceServer).CreateSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/CreateSession",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlacementServiceServer).CreateSession(ctx, req.(*CreateSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlacementService_GetSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlacementServiceServer).GetSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/GetSession",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlacementServiceServer).GetSession(ctx, req.(*GetSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlacementService_DeleteSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlacementServiceServer).DeleteSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/DeleteSession",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlacementServiceServer).DeleteSession(ctx, req.(*DeleteSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlacementService_SelectTemplate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SelectTemplateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlacementServiceServer).SelectTemplate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/SelectTemplate",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlacementServiceServer).SelectTemplate(ctx, req.(*SelectTemplateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlacementService_Rotate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RotateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlacementServiceServer).Rotate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/Rotate",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlacementServiceServer).Rotate(ctx, req.(*RotateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlacementService_SwitchGrid_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SwitchGridRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlacementServiceServer).SwitchGrid(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/SwitchGrid",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlacementServiceServer).SwitchGrid(ctx, req.(*SwitchGridRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlacementService_Place_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PlaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlacementServiceServer).Place(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/Place",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlacementServiceServer).Place(ctx, req.(*PlaceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlacementService_Remove_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlacementServiceServer).Remove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/Remove",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlacementServiceServer).Remove(ctx, req.(*RemoveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlacementService_ApplyLayout_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ApplyLayoutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlacementServiceServer).ApplyLayout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ApplyLayout",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlacementServiceServer).ApplyLayout(ctx, req.(*ApplyLayoutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlacementService_SaveSnapshot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SaveSnapshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlacementServiceServer).SaveSnapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/SaveSnapshot",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlacementServiceServer).SaveSnapshot(ctx, req.(*SaveSnapshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlacementService_LoadSnapshot_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoadSnapshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlacementServiceServer).LoadSnapshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/LoadSnapshot",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlacementServiceServer).LoadSnapshot(ctx, req.(*LoadSnapshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PlacementServiceDesc describes the placement service. Messages are JSON
// encoded, so there is no proto file behind it.
var PlacementServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PlacementServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateSession",
			Handler:    _PlacementService_CreateSession_Handler,
		},
		{
			MethodName: "GetSession",
			Handler:    _PlacementService_GetSession_Handler,
		},
		{
			MethodName: "DeleteSession",
			Handler:    _PlacementService_DeleteSession_Handler,
		},
		{
			MethodName: "SelectTemplate",
			Handler:    _PlacementService_SelectTemplate_Handler,
		},
		{
			MethodName: "Rotate",
			Handler:    _PlacementService_Rotate_Handler,
		},
		{
			MethodName: "SwitchGrid",
			Handler:    _PlacementService_SwitchGrid_Handler,
		},
		{
			MethodName: "Place",
			Handler:    _PlacementService_Place_Handler,
		},
		{
			MethodName: "Remove",
			Handler:    _PlacementService_Remove_Handler,
		},
		{
			MethodName: "ApplyLayout",
			Handler:    _PlacementService_ApplyLayout_Handler,
		},
		{
			MethodName: "SaveSnapshot",
			Handler:    _PlacementService_SaveSnapshot_Handler,
		},
		{
			MethodName: "LoadSnapshot",
			Handler:    _PlacementService_LoadSnapshot_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpggrid/placement/v1alpha1/placement.json",
}

// PlacementServiceClient is the client API for the placement service
type PlacementServiceClient interface {
	CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	DeleteSession(ctx context.Context, in *DeleteSessionRequest, opts ...grpc.CallOption) (*DeleteSessionResponse, error)
	SelectTemplate(ctx context.Context, in *SelectTemplateRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	Rotate(ctx context.Context, in *RotateRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	SwitchGrid(ctx context.Context, in *SwitchGridRequest, opts ...grpc.CallOption) (*SwitchGridResponse, error)
	Place(ctx context.Context, in *PlaceRequest, opts ...grpc.CallOption) (*PlacementResponse, error)
	Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*PlacementResponse, error)
	ApplyLayout(ctx context.Context, in *ApplyLayoutRequest, opts ...grpc.CallOption) (*ApplyLayoutResponse, error)
	SaveSnapshot(ctx context.Context, in *SaveSnapshotRequest, opts ...grpc.CallOption) (*SaveSnapshotResponse, error)
	LoadSnapshot(ctx context.Context, in *LoadSnapshotRequest, opts ...grpc.CallOption) (*LoadSnapshotResponse, error)
}

type placementServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPlacementServiceClient creates a client that always uses the JSON codec
func NewPlacementServiceClient(cc grpc.ClientConnInterface) PlacementServiceClient {
	return &placementServiceClient{cc: cc}
}

func (c *placementServiceClient) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/CreateSession", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *placementServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/GetSession", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *placementServiceClient) DeleteSession(ctx context.Context, in *DeleteSessionRequest, opts ...grpc.CallOption) (*DeleteSessionResponse, error) {
	out := new(DeleteSessionResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/DeleteSession", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *placementServiceClient) SelectTemplate(ctx context.Context, in *SelectTemplateRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/SelectTemplate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *placementServiceClient) Rotate(ctx context.Context, in *RotateRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	out := new(SessionResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Rotate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *placementServiceClient) SwitchGrid(ctx context.Context, in *SwitchGridRequest, opts ...grpc.CallOption) (*SwitchGridResponse, error) {
	out := new(SwitchGridResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/SwitchGrid", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *placementServiceClient) Place(ctx context.Context, in *PlaceRequest, opts ...grpc.CallOption) (*PlacementResponse, error) {
	out := new(PlacementResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Place", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *placementServiceClient) Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*PlacementResponse, error) {
	out := new(PlacementResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Remove", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *placementServiceClient) ApplyLayout(ctx context.Context, in *ApplyLayoutRequest, opts ...grpc.CallOption) (*ApplyLayoutResponse, error) {
	out := new(ApplyLayoutResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/ApplyLayout", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *placementServiceClient) SaveSnapshot(ctx context.Context, in *SaveSnapshotRequest, opts ...grpc.CallOption) (*SaveSnapshotResponse, error) {
	out := new(SaveSnapshotResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/SaveSnapshot", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *placementServiceClient) LoadSnapshot(ctx context.Context, in *LoadSnapshotRequest, opts ...grpc.CallOption) (*LoadSnapshotResponse, error) {
	out := new(LoadSnapshotResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/LoadSnapshot", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
