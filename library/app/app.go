package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/librarypro/library/config"
	"github.com/Astemirdum/librarypro/library/internal/handler"
	"github.com/Astemirdum/librarypro/library/internal/notifier"
	"github.com/Astemirdum/librarypro/library/internal/repository"
	"github.com/Astemirdum/librarypro/library/internal/server"
	"github.com/Astemirdum/librarypro/library/internal/service"
	"github.com/Astemirdum/librarypro/library/migrations"
	"github.com/Astemirdum/librarypro/pkg/kafka"
	"github.com/Astemirdum/librarypro/pkg/logger"
	"github.com/Astemirdum/librarypro/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	defer log.Sync() //nolint:errcheck

	repo, closeRepo, err := newRepository(cfg, log)
	if err != nil {
		log.Fatal("repository init", zap.Error(err))
	}

	var ntf service.Notifier = notifier.NewLogNotifier(log)
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		kn := notifier.NewKafkaNotifier(producer, cfg.Kafka.TopicOrDefault(), log)
		defer func() {
			if err := kn.Close(); err != nil {
				log.Error("kafka producer close", zap.Error(err))
			}
		}()
		ntf = kn
	}

	svc := service.NewService(repo, log,
		service.WithNotifier(ntf),
		service.WithLoanPolicy(service.LoanPolicy{
			Period:      cfg.Loan.Period,
			MaxRenewals: cfg.Loan.MaxRenewals,
		}),
	)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
		zap.String("storage", string(cfg.Storage)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	closeRepo()
	log.Info("Graceful shutdown finished")
}

func newRepository(cfg *config.Config, log *zap.Logger) (repository.Repository, func(), error) {
	if cfg.Storage != config.StoragePostgres {
		return repository.NewMemoryRepository(repository.SampleSeed(time.Now()), log), func() {}, nil
	}
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, nil, err
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, func() {
		if err := db.Close(); err != nil {
			log.Error("db close", zap.Error(err))
		}
	}, nil
}
