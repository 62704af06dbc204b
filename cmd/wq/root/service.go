package root

import (
	"context"

	"go.uber.org/zap"

	"wanderquest/internal/config"
	"wanderquest/internal/engine"
	"wanderquest/internal/store"
)

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func openStore(ctx context.Context) (*store.Store, func(), error) {
	logger, err := newLogger()
	if err != nil {
		return nil, nil, err
	}
	path, err := store.DefaultDBPath()
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(ctx, path, logger, engine.Defaults())
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = st.Close()
		_ = logger.Sync()
	}
	return st, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	st, cleanup, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	balPath, err := config.DefaultBalancePath()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	bal, err := config.LoadBalance(balPath)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return engine.NewService(st, bal), cleanup, nil
}
