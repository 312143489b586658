// Package grpc exposes the catalog over gRPC as service catalog.v1.Catalog.
//
// The service is described by a hand-written [grpc.ServiceDesc] and carries
// JSON-encoded messages (content-subtype "json"), so no generated protobuf
// code is involved. Mutations authenticate through the x-catalog-email and
// x-catalog-password metadata keys.
package grpc
