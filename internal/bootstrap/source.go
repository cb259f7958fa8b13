package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/config"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/database"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/dataset"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/repository"
)

const (
	SourceSample   = "sample"
	SourceYAML     = "yaml"
	SourcePostgres = "postgres"
)

var ErrUnknownSource = errors.New("unknown data source")

// Source bundles the relations the analytics read from. Ref and DB are only
// set for the postgres source.
type Source struct {
	Relations domain.RelationSource
	Ref       domain.ReferenceQuerier
	DB        *sql.DB
}

func (s *Source) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// DatabaseConfig maps the environment onto the postgres connection settings.
func DatabaseConfig() database.Config {
	return database.Config{
		Host:            config.DefaultEnvConfig.DB_HOST,
		Port:            config.DefaultEnvConfig.DB_PORT,
		User:            config.DefaultEnvConfig.DB_USER,
		Password:        config.DefaultEnvConfig.DB_PASSWORD,
		DBName:          config.DefaultEnvConfig.DB_NAME,
		SSLMode:         config.DefaultEnvConfig.DB_SSL_MODE,
		MaxOpenConns:    config.DefaultEnvConfig.DB_MAX_OPEN_CONNS,
		MaxIdleConns:    config.DefaultEnvConfig.DB_MAX_IDLE_CONNS,
		ConnMaxLifetime: config.DefaultEnvConfig.DB_CONN_MAX_LIFETIME,
	}
}

// OpenSource opens the named relation source. file is the dataset path for the
// yaml source; dbCfg and schema are used by the postgres source.
func OpenSource(ctx context.Context, kind, file string, dbCfg database.Config, schema string) (*Source, error) {
	switch kind {
	case "", SourceSample:
		return &Source{Relations: dataset.Sample()}, nil
	case SourceYAML:
		if file == "" {
			return nil, fmt.Errorf("yaml source needs a dataset file")
		}
		mem, err := dataset.LoadYAML(file)
		if err != nil {
			return nil, err
		}
		return &Source{Relations: mem}, nil
	case SourcePostgres:
		db, err := database.NewPostgresDB(ctx, dbCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		src := repository.NewPostgresSource(db, schema)
		return &Source{Relations: src, Ref: src, DB: db}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}
