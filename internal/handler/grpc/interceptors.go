package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/utils"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	traceIDMetadataKey = "x-trace-id"
	transportGRPC      = "grpc"
)

// withTraceID mirrors the HTTP trace middleware: the caller's x-trace-id is
// reused or a new one generated, and returned in the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		traceID = firstValue(md, traceIDMetadataKey)
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))

	ctx = utils.WithTransport(utils.WithTraceID(ctx, traceID), transportGRPC)
	ctx = h.logger.WithTraceID(traceID).WithContext(ctx)

	return handler(ctx, req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) withMetrics(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)

	if h.metrics != nil {
		h.metrics.GRPCRequests.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
	}

	return resp, err
}
