package store

import (
	"context"

	"github.com/mpetrenko/authd/internal/config"
	"github.com/mpetrenko/authd/internal/logger"
)

// Storages aggregates the three stores of the authentication core. A single
// instance is shared by every concurrent request.
type Storages struct {
	Users        UserStore
	BannedTokens BannedTokenStore
	TwoFACodes   TwoFACodeStore
}

// NewStorages wires the store implementations selected by cfg: the user
// directory is PostgreSQL-backed when a DSN is configured (migrations are
// applied on startup) and in-memory otherwise. Revoked tokens and pending
// two-factor challenges are always process-local.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{
		BannedTokens: NewMemoryBannedTokenStore(log),
		TwoFACodes:   NewMemoryTwoFACodeStore(log),
	}

	if cfg.DB.DSN == "" {
		log.Info().Msg("no database DSN configured, using in-memory user store")
		storages.Users = NewMemoryUserStore(log)
		return storages, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	storages.Users = NewUserRepository(db, log)
	return storages, nil
}
