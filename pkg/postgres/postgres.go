package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgreDB struct {
	Pool     *pgxpool.Pool
	DBConfig *pgxpool.Config
}

type Config interface {
	GetDSN() string
}

// PoolOptions carries pool tuning knobs from the application config.
type PoolOptions struct {
	MaxConns int32
	MinConns int32
}

func New(ctx context.Context, config Config, opts PoolOptions) (*PostgreDB, error) {
	dbConfig, err := pgxpool.ParseConfig(config.GetDSN())
	if err != nil {
		return nil, err
	}

	if opts.MaxConns > 0 {
		dbConfig.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		dbConfig.MinConns = opts.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, err
	}

	// Ping the database
	if err = pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &PostgreDB{
		Pool:     pool,
		DBConfig: dbConfig,
	}, nil
}

func (db *PostgreDB) Close() {
	db.Pool.Close()
}
