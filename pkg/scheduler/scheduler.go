// Package scheduler runs entity sync jobs on independent cron cadences.
// Each job is wrapped so that one entity's failure never disturbs the
// others: errors are logged and counted, and the job simply waits for its
// next tick. A tick that fires while the previous run of the same job is
// still in flight is skipped.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/storhub/bqsync/pkg/logger"
	"github.com/storhub/bqsync/pkg/metrics"
)

// Job is one scheduled sync. Run returns the number of records synced.
type Job struct {
	// Name identifies the job in logs
	Name string
	// Entity labels the job's metrics
	Entity string
	// Spec is a five-field cron expression
	Spec string
	// Run performs one sync pass
	Run func(ctx context.Context) (int, error)
}

// Scheduler owns the cron runner and the registered jobs.
type Scheduler struct {
	cron *cron.Cron
	jobs []Job
}

// New builds a scheduler. The cron chain enforces at-most-one-in-flight per
// job and recovers panics instead of taking the process down.
func New() *Scheduler {
	cl := &cronLogger{log: logger.Get()}
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cl),
			cron.Recover(cl),
		)),
	}
}

// Add registers a job. An invalid cron spec is a registration error, not a
// runtime one.
func (s *Scheduler) Add(job Job) error {
	_, err := s.cron.AddFunc(job.Spec, s.wrap(job))
	if err != nil {
		return err
	}
	s.jobs = append(s.jobs, job)
	logger.Get().Info("job registered",
		zap.String("job", job.Name),
		zap.String("spec", job.Spec))
	return nil
}

// wrap adapts a Job to a cron func: it builds a context carrying the job
// identity, records metrics, and swallows the error after logging it. This
// is the single place sync errors stop propagating.
func (s *Scheduler) wrap(job Job) func() {
	return func() {
		ctx := context.WithValue(context.Background(), logger.JobKey, job.Name)
		ctx = context.WithValue(ctx, logger.EntityKey, job.Entity)
		log := logger.WithContext(ctx)

		log.Info("sync started")
		start := time.Now()

		count, err := job.Run(ctx)

		elapsed := time.Since(start)
		metrics.SyncDuration.WithLabelValues(job.Entity).Observe(elapsed.Seconds())

		if err != nil {
			metrics.SyncFailures.WithLabelValues(job.Entity).Inc()
			log.Error("sync failed",
				zap.Error(err),
				zap.Duration("duration", elapsed))
			return
		}

		metrics.RecordsSynced.WithLabelValues(job.Entity).Add(float64(count))
		log.Info("sync complete",
			zap.Int("records", count),
			zap.Duration("duration", elapsed))
	}
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Get().Info("scheduler started", zap.Int("jobs", len(s.jobs)))
}

// Stop halts scheduling and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Get().Info("scheduler stopped")
}

// Jobs returns the registered jobs in registration order.
func (s *Scheduler) Jobs() []Job {
	return s.jobs
}

// cronLogger adapts zap to the cron logging interface.
type cronLogger struct {
	log *zap.Logger
}

func (c *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Sugar().Infow(msg, keysAndValues...)
}

func (c *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Sugar().Errorw(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
