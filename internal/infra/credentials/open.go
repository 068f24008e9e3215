package credentials

import (
	"context"
	"fmt"
	"path/filepath"

	"campaignhub/internal/infra"
	"campaignhub/internal/storage"
)

// Tokens is implemented by every token store in this package.
type Tokens interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// Open builds the token store selected by cfg.TokenStore. The returned close
// function releases the database pool, if one was opened.
func Open(ctx context.Context, cfg *infra.Config, logger infra.Logger) (Tokens, func(), error) {
	switch cfg.TokenStore {
	case infra.TokenStorePostgres:
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("credentials: %w", err)
		}
		runner := infra.NewSQLRunner(pool, logger)
		return NewStore(runner, cfg.TokenTable), pool.Close, nil
	default:
		path := cfg.TokenPath
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		files, err := storage.NewFileStore(path)
		if err != nil {
			return nil, nil, fmt.Errorf("credentials: %w", err)
		}
		return NewFileTokens(files), func() {}, nil
	}
}
