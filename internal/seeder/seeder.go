// Package seeder loads demo data for local development. Seeders are
// idempotent; running them against a populated database is a no-op.
package seeder

import (
	"context"
	"log"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context) error
}

func RunAll(ctx context.Context, logger *log.Logger, seeders ...Seeder) error {
	for _, s := range seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx); err != nil {
			return err
		}
		if logger != nil {
			logger.Printf("[Seeder] done name=%s", s.Name())
		}
	}
	return nil
}
