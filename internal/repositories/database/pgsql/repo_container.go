package pgsql

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	portsrepo "github.com/hasanqazi87/lab-site/internal/core/ports/repositories"
	redisrepo "github.com/hasanqazi87/lab-site/internal/repositories/cache/redis"
)

// NewRepositoryProvider wires the concrete repositories. The reference pool
// and the jobs pool point at different databases; the jobs side is read-only.
func NewRepositoryProvider(refPool *pgxpool.Pool, jobsPool *pgxpool.Pool, redisClient *goredis.Client, snapshotTTL time.Duration) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(refPool)
	providerRepo := newPgxProviderRepository(refPool)
	categoryRepo := newPgxCategoryRepository(refPool)
	jobRepo := newPgxJobRepository(jobsPool)
	snapshotRepo := redisrepo.NewRedisSnapshotRepository(redisClient, snapshotTTL)

	return portsrepo.RepositoryProvider{
		AccountRepo:  accountRepo,
		ProviderRepo: providerRepo,
		CategoryRepo: categoryRepo,
		JobRepo:      jobRepo,
		SnapshotRepo: snapshotRepo,
	}
}
