package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmarchant/folio/internal/store"
	"github.com/rmarchant/folio/internal/store/memory"
	"github.com/rmarchant/folio/internal/store/postgres"
)

type Globals struct {
	Debug   bool
	Version string
}

// Stores bundles the backing stores a command operates on.
type Stores struct {
	Users    store.UserStore
	Projects store.ProjectStore
	Contacts store.ContactStore

	pool *pgxpool.Pool
}

// Close releases the shared connection pool if one was opened.
func (s *Stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// StoreFlags selects and configures the persistence backend. It is shared by
// the server and seed commands.
type StoreFlags struct {
	StoreType string             `help:"store type (memory or postgres)" default:"memory" env:"FOLIO_STORE_TYPE" enum:"memory,postgres"`
	Postgres  PostgresStoreFlags `embed:"" prefix:"postgres-"`
}

type PostgresStoreFlags struct {
	ConnString string `help:"PostgreSQL connection string" env:"POSTGRES_CONNECTION_STRING"`

	// Connection pool configuration
	MaxConns        int32 `help:"maximum number of connections in pool" default:"20"`
	MinConns        int32 `help:"minimum number of connections in pool" default:"5"`
	MaxConnLifetime int32 `help:"maximum connection lifetime in seconds" default:"3600"`
	MaxConnIdleTime int32 `help:"maximum connection idle time in seconds" default:"1800"`

	AutoMigrate bool `help:"run database migrations on startup" default:"false" env:"FOLIO_POSTGRES_AUTO_MIGRATE"`
}

func (s *PostgresStoreFlags) Validate() error {
	if s.ConnString == "" {
		return errors.New("PostgreSQL connection string is required (--postgres-conn-string or POSTGRES_CONNECTION_STRING)")
	}
	return nil
}

func (f *StoreFlags) openStores(ctx context.Context) (*Stores, error) {
	switch f.StoreType {
	case "postgres":
		if err := f.Postgres.Validate(); err != nil {
			return nil, fmt.Errorf("failed to validate postgres flags: %w", err)
		}

		pool, err := postgres.NewPool(ctx, &postgres.PoolConfig{
			ConnString:      f.Postgres.ConnString,
			MaxConns:        f.Postgres.MaxConns,
			MinConns:        f.Postgres.MinConns,
			MaxConnLifetime: f.Postgres.MaxConnLifetime,
			MaxConnIdleTime: f.Postgres.MaxConnIdleTime,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create connection pool: %w", err)
		}

		if f.Postgres.AutoMigrate {
			if err := postgres.RunMigrations(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("failed to run migrations: %w", err)
			}
		}

		return &Stores{
			Users:    postgres.NewUserStore(pool),
			Projects: postgres.NewProjectStore(pool),
			Contacts: postgres.NewContactStore(pool),
			pool:     pool,
		}, nil

	default:
		return &Stores{
			Users:    memory.NewUserStore(),
			Projects: memory.NewProjectStore(),
			Contacts: memory.NewContactStore(),
		}, nil
	}
}

func configureHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		IdleTimeout:       5 * time.Minute,
		MaxHeaderBytes:    8 * 1024, // 8KiB
	}
}
