package grpc

import (
	"context"
	"strings"

	"github.com/MKhiriev/food-catalog/internal/category"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/metrics"
	"github.com/MKhiriev/food-catalog/internal/service"
	"github.com/MKhiriev/food-catalog/internal/store"
	"github.com/MKhiriev/food-catalog/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Metadata keys carrying credentials for mutating calls.
const (
	EmailMetadataKey    = "x-catalog-email"
	PasswordMetadataKey = "x-catalog-password"
)

// Handler is the root gRPC transport handler. It implements CatalogServer
// on top of the service layer.
type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		metrics:  m,
		logger:   logger,
	}
}

// Init builds a grpc.Server with the catalog service and the handler's
// interceptor chain registered.
func (h *Handler) Init(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.withMetrics))

	server := grpc.NewServer(opts...)
	server.RegisterService(&ServiceDesc, h)
	return server
}

func (h *Handler) ListItems(ctx context.Context, req *ListItemsRequest) (*models.CatalogView, error) {
	view, err := h.services.CatalogService.Browse(ctx, category.ParseSelector(req.Category))
	if err != nil {
		return nil, toStatus(ctx, "*Handler.ListItems", err)
	}
	return &view, nil
}

func (h *Handler) GetItem(ctx context.Context, req *GetItemRequest) (*models.ClassifiedItem, error) {
	item, err := h.services.CatalogService.Get(ctx, req.ID)
	if err != nil {
		return nil, toStatus(ctx, "*Handler.GetItem", err)
	}
	return &item, nil
}

func (h *Handler) Counts(ctx context.Context, _ *CountsRequest) (*models.Counts, error) {
	counts, err := h.services.CatalogService.Counts(ctx)
	if err != nil {
		return nil, toStatus(ctx, "*Handler.Counts", err)
	}
	return &counts, nil
}

func (h *Handler) SubmitItem(ctx context.Context, req *SubmitItemRequest) (*models.ClassifiedItem, error) {
	item, err := h.services.CatalogService.Submit(ctx, h.session(ctx), req.Item)
	if err != nil {
		return nil, toStatus(ctx, "*Handler.SubmitItem", err)
	}
	return &item, nil
}

func (h *Handler) DeleteItem(ctx context.Context, req *DeleteItemRequest) (*DeleteItemResponse, error) {
	deleted, err := h.services.CatalogService.Delete(ctx, h.session(ctx), req.ID)
	if err != nil {
		return nil, toStatus(ctx, "*Handler.DeleteItem", err)
	}
	if !deleted {
		return nil, toStatus(ctx, "*Handler.DeleteItem", store.ErrItemNotFound)
	}
	return &DeleteItemResponse{Deleted: true}, nil
}

func (h *Handler) Authorize(ctx context.Context, req *AuthorizeRequest) (*models.Session, error) {
	session, err := h.services.AccessService.Authorize(ctx, models.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, toStatus(ctx, "*Handler.Authorize", err)
	}
	return &session, nil
}

// session derives the caller's session from the credential metadata.
// Absent or rejected credentials give the anonymous session.
func (h *Handler) session(ctx context.Context) models.Session {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return models.Anonymous()
	}

	email := firstValue(md, EmailMetadataKey)
	if strings.TrimSpace(email) == "" {
		return models.Anonymous()
	}

	session, err := h.services.AccessService.Authorize(ctx, models.Credentials{
		Email:    email,
		Password: firstValue(md, PasswordMetadataKey),
	})
	if err != nil {
		return models.Anonymous()
	}
	return session
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
