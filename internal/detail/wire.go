//go:build wireinject
// +build wireinject

package detail

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	deliveryhttp "github.com/tair/storefront/internal/detail/delivery/http"
	"github.com/tair/storefront/internal/detail/domain"
	"github.com/tair/storefront/internal/detail/repository"
	"github.com/tair/storefront/internal/detail/usecase/command"
	"github.com/tair/storefront/internal/detail/usecase/query"
)

// ProvideSessionRepository provides the Redis-backed session repository
// wrapped with tracing
func ProvideSessionRepository(client *redis.Client) domain.SessionRepository {
	return repository.NewTracedSessionRepository(repository.NewRedisSessionRepository(client))
}

// ProvidePendingStore provides the pending-selection store
func ProvidePendingStore(client *redis.Client) domain.PendingStore {
	return repository.NewRedisSessionRepository(client)
}

// ProvideAuthProvider provides the request-context auth capability
func ProvideAuthProvider() domain.AuthProvider {
	return deliveryhttp.ContextAuthProvider{}
}

// Command Handlers Providers
func ProvideStartSessionHandler(repo domain.SessionRepository, catalog domain.Catalog) *command.StartSessionHandler {
	return command.NewStartSessionHandler(repo, catalog)
}

func ProvideSelectVariantHandler(repo domain.SessionRepository) *command.SelectVariantHandler {
	return command.NewSelectVariantHandler(repo)
}

func ProvideStepQuantityHandler(repo domain.SessionRepository) *command.StepQuantityHandler {
	return command.NewStepQuantityHandler(repo)
}

func ProvideSetQuantityHandler(repo domain.SessionRepository) *command.SetQuantityHandler {
	return command.NewSetQuantityHandler(repo)
}

func ProvideAddToCartHandler(
	repo domain.SessionRepository,
	cart domain.CartGateway,
	pending domain.PendingStore,
	auth domain.AuthProvider,
	events command.EventPublisher,
) *command.AddToCartHandler {
	return command.NewAddToCartHandler(repo, cart, pending, auth, events)
}

func ProvideBuyNowHandler(
	repo domain.SessionRepository,
	pending domain.PendingStore,
	auth domain.AuthProvider,
	events command.EventPublisher,
) *command.BuyNowHandler {
	return command.NewBuyNowHandler(repo, pending, auth, events)
}

// Query Handlers Providers
func ProvideGetSessionHandler(repo domain.SessionRepository) *query.GetSessionHandler {
	return query.NewGetSessionHandler(repo)
}

func ProvideListReviewsHandler(repo domain.SessionRepository) *query.ListReviewsHandler {
	return query.NewListReviewsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSessionRepository,
	ProvidePendingStore,
	ProvideAuthProvider,
)

var CommandHandlerSet = wire.NewSet(
	ProvideStartSessionHandler,
	ProvideSelectVariantHandler,
	ProvideStepQuantityHandler,
	ProvideSetQuantityHandler,
	ProvideAddToCartHandler,
	ProvideBuyNowHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetSessionHandler,
	ProvideListReviewsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(
	client *redis.Client,
	catalog domain.Catalog,
	cart domain.CartGateway,
	events command.EventPublisher,
) (*deliveryhttp.DetailHandler, error) {
	wire.Build(
		AllHandlersSet,
		deliveryhttp.NewDetailHandlerWithDI,
	)
	return nil, nil
}
