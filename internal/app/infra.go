package app

import (
	"context"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/fx"

	"github.com/shushrut/shushrut_backend/config"
	"github.com/shushrut/shushrut_backend/internal/events"
	"github.com/shushrut/shushrut_backend/pkg/database"
	"github.com/shushrut/shushrut_backend/pkg/objectstore"
	"github.com/shushrut/shushrut_backend/pkg/observability"
	"github.com/shushrut/shushrut_backend/pkg/predict"
	redispkg "github.com/shushrut/shushrut_backend/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideMongoClient),
	fx.Provide(ProvideMongoDatabase),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideObjectStore),
	fx.Provide(ProvidePredictClient),
	fx.Provide(ProvideEventPublisher),
)

func ProvideMongoClient(lc fx.Lifecycle, cfg *config.Config) (*mongo.Client, error) {
	client, err := database.Connect(cfg.Mongo)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing mongo connection")
			return client.Disconnect(ctx)
		},
	})
	return client, nil
}

func ProvideMongoDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return database.Database(client, cfg.Mongo)
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		// Session revocation and the rate limiter degrade gracefully
		// without Redis.
		return nil, nil
	}
	rdb, err := redispkg.NewClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideObjectStore(cfg *config.Config) (*objectstore.Client, error) {
	return objectstore.New(cfg.S3)
}

func ProvidePredictClient(cfg *config.Config) *predict.Client {
	return predict.New(cfg.Predict)
}

func ProvideEventPublisher(lc fx.Lifecycle, cfg *config.Config) (events.Publisher, error) {
	if !cfg.Nats.Enabled {
		return events.NewNoop(), nil
	}
	nc, err := nats.Connect(cfg.Nats.URL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return events.NewNats(nc), nil
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
