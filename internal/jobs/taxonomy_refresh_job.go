package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bsimkins11/project-agent-admin/internal/domain"
)

// TaxonomyRefreshJobName is the name of the classification taxonomy refresh job
const TaxonomyRefreshJobName = "taxonomy_refresh"

// TaxonomyRefresher keeps the classification taxonomy cache warm.
// This interface allows the job to call the service without importing the
// service package directly.
type TaxonomyRefresher interface {
	Refresh(ctx context.Context) (*domain.ClassificationOptions, error)
}

// TaxonomyRefreshJob periodically re-fetches the classification taxonomy so
// the classification modal never waits on a cold cache.
type TaxonomyRefreshJob struct {
	refresher TaxonomyRefresher
	logger    *zap.Logger
	timeout   time.Duration
}

// NewTaxonomyRefreshJob creates a new taxonomy refresh job.
func NewTaxonomyRefreshJob(refresher TaxonomyRefresher, logger *zap.Logger, timeout time.Duration) *TaxonomyRefreshJob {
	return &TaxonomyRefreshJob{
		refresher: refresher,
		logger:    logger,
		timeout:   timeout,
	}
}

// Run executes one taxonomy refresh.
func (j *TaxonomyRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	opts, err := j.refresher.Refresh(ctx)
	if err != nil {
		j.logger.Error("taxonomy refresh failed",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return
	}

	j.logger.Info("taxonomy refreshed",
		zap.Int("doc_types", len(opts.DocTypes)),
		zap.Duration("duration", time.Since(start)))
}
