package grpc

import (
	"context"

	"github.com/MKhiriev/food-catalog/models"
	"google.golang.org/grpc"
)

const ServiceName = "catalog.v1.Catalog"

// Full method names, as used by clients and interceptors.
const (
	MethodListItems  = "/" + ServiceName + "/ListItems"
	MethodGetItem    = "/" + ServiceName + "/GetItem"
	MethodCounts     = "/" + ServiceName + "/Counts"
	MethodSubmitItem = "/" + ServiceName + "/SubmitItem"
	MethodDeleteItem = "/" + ServiceName + "/DeleteItem"
	MethodAuthorize  = "/" + ServiceName + "/Authorize"
)

// CatalogServer is the server API for catalog.v1.Catalog.
type CatalogServer interface {
	ListItems(context.Context, *ListItemsRequest) (*models.CatalogView, error)
	GetItem(context.Context, *GetItemRequest) (*models.ClassifiedItem, error)
	Counts(context.Context, *CountsRequest) (*models.Counts, error)
	SubmitItem(context.Context, *SubmitItemRequest) (*models.ClassifiedItem, error)
	DeleteItem(context.Context, *DeleteItemRequest) (*DeleteItemResponse, error)
	Authorize(context.Context, *AuthorizeRequest) (*models.Session, error)
}

// ServiceDesc describes catalog.v1.Catalog for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListItems", Handler: unary(MethodListItems, CatalogServer.ListItems)},
		{MethodName: "GetItem", Handler: unary(MethodGetItem, CatalogServer.GetItem)},
		{MethodName: "Counts", Handler: unary(MethodCounts, CatalogServer.Counts)},
		{MethodName: "SubmitItem", Handler: unary(MethodSubmitItem, CatalogServer.SubmitItem)},
		{MethodName: "DeleteItem", Handler: unary(MethodDeleteItem, CatalogServer.DeleteItem)},
		{MethodName: "Authorize", Handler: unary(MethodAuthorize, CatalogServer.Authorize)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

// unary builds the method handler protoc-gen-go-grpc would generate for a
// unary call: decode, then run through the interceptor chain if any.
func unary[Req, Resp any](fullMethod string, call func(CatalogServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CatalogServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
