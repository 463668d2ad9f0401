package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	ProviderMapKey    = "lector"
	serviceName       = "lector.provider.v1.LectorProvider"
	jsonCodecName     = "json"
	methodGetMetadata = "/" + serviceName + "/GetMetadata"
	methodLookup      = "/" + serviceName + "/Lookup"
)

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "LECTOR_PROVIDER",
	MagicCookieValue: "lector",
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return jsonCodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type Empty struct{}

type Metadata struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Dictionaries []string `json:"dictionaries"`
}

type LookupRequest struct {
	Headword string `json:"headword"`
}

type Entry struct {
	Headword   string `json:"headword"`
	Dictionary string `json:"dictionary"`
	Phonetic   string `json:"phonetic"`
	Definition string `json:"definition"`
}

type LookupResponse struct {
	Entries []Entry `json:"entries"`
}

type LectorProviderServer interface {
	GetMetadata(ctx context.Context, in *Empty) (*Metadata, error)
	Lookup(ctx context.Context, in *LookupRequest) (*LookupResponse, error)
}

type LectorProviderClient interface {
	GetMetadata(ctx context.Context) (*Metadata, error)
	Lookup(ctx context.Context, in *LookupRequest) (*LookupResponse, error)
}

type lectorProviderClient struct {
	conn *grpc.ClientConn
}

func NewLectorProviderClient(conn *grpc.ClientConn) LectorProviderClient {
	return &lectorProviderClient{conn: conn}
}

func (c *lectorProviderClient) GetMetadata(ctx context.Context) (*Metadata, error) {
	out := &Metadata{}
	if err := c.conn.Invoke(ctx, methodGetMetadata, &Empty{}, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lectorProviderClient) Lookup(ctx context.Context, in *LookupRequest) (*LookupResponse, error) {
	out := &LookupResponse{}
	if err := c.conn.Invoke(ctx, methodLookup, in, out, grpc.CallContentSubtype(jsonCodecName)); err != nil {
		return nil, err
	}
	return out, nil
}

func RegisterLectorProviderServer(server grpc.ServiceRegistrar, impl LectorProviderServer) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*LectorProviderServer)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetMetadata",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &Empty{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.GetMetadata(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetMetadata}
					handler := func(ctx context.Context, req any) (any, error) {
						empty, ok := req.(*Empty)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.GetMetadata(ctx, empty)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
			{
				MethodName: "Lookup",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := &LookupRequest{}
					if err := dec(in); err != nil {
						return nil, err
					}
					if interceptor == nil {
						return impl.Lookup(ctx, in)
					}
					info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodLookup}
					handler := func(ctx context.Context, req any) (any, error) {
						inReq, ok := req.(*LookupRequest)
						if !ok {
							return nil, fmt.Errorf("invalid request type")
						}
						return impl.Lookup(ctx, inReq)
					}
					return interceptor(ctx, in, info, handler)
				},
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "schemas/provider-rpc-v1.proto",
	}, impl)
}

type GRPCProvider struct {
	plugin.NetRPCUnsupportedPlugin
	Impl LectorProviderServer
}

func (p *GRPCProvider) GRPCServer(_ *plugin.GRPCBroker, server *grpc.Server) error {
	RegisterLectorProviderServer(server, p.Impl)
	return nil
}

func (p *GRPCProvider) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, conn *grpc.ClientConn) (any, error) {
	return NewLectorProviderClient(conn), nil
}

func ProviderMap(impl LectorProviderServer) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		ProviderMapKey: &GRPCProvider{Impl: impl},
	}
}
