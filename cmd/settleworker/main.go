package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/sweeper"
	"marketplace/internal/delivery/worker"
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/notification"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/infra/pubsub"
	"marketplace/internal/usecase"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewOrderRepository,
			postgres.NewCommissionRepository,
			postgres.NewRateRuleRepository,
			postgres.NewAccountRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		notification.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newSettlementUsecase,
			impl.NewOrderService,
		),
	)
}

// newSettlementUsecase flattens the settlement tuning out of the config so the
// usecase layer stays free of config imports.
func newSettlementUsecase(
	txManager repository.TransactionManager,
	commissionRepo repository.CommissionRepository,
	rateRuleRepo repository.RateRuleRepository,
	accountRepo repository.AccountRepository,
	notifier service.Notifier,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.SettlementUsecase {
	return impl.NewSettlementService(
		txManager,
		commissionRepo,
		rateRuleRepo,
		accountRepo,
		notifier,
		logger,
		cfg.Settlement.MaxAttempts,
		cfg.Settlement.RetryDelay,
		cfg.Settlement.NotifyTimeout,
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				sweeper.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		// Disabled components register as nil
		if delivery == nil {
			continue
		}

		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
