// Package scheduler runs clubkit's recurring background jobs, currently the
// session reminder sweep, on one process-wide gocron scheduler. Jobs are
// registered between Init and Start; Stop waits for running jobs to finish.
package scheduler

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotInitialized = errors.New("scheduler not initialized")
	ErrEmptyJobName   = errors.New("job name is required")
	ErrEmptyCronExpr  = errors.New("cron expression is required")
)

// The scheduler is process-wide state, like the database handle in the api
// packages. initOnce makes repeat Init calls return the first outcome and
// stopOnce makes Stop idempotent during shutdown.
var (
	initOnce sync.Once
	initErr  error
	stopOnce sync.Once
	stopErr  error
	sched    gocron.Scheduler
)

// Init builds the process-wide scheduler. Call it once at startup, before
// registering jobs.
func Init() error {
	initOnce.Do(func() {
		s, err := gocron.NewScheduler(
			gocron.WithGlobalJobOptions(
				gocron.WithEventListeners(
					gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
						log.Error().
							Str("job_id", jobID.String()).
							Str("job_name", jobName).
							Interface("panic", recoverData).
							Msg("Background job panicked")
					}),
				),
			),
		)
		if err != nil {
			initErr = err
			return
		}
		sched = s
		log.Info().Msg("Scheduler initialized")
	})
	return initErr
}

// Start begins running registered jobs.
func Start() error {
	if sched == nil {
		return ErrNotInitialized
	}
	log.Info().Msg("Scheduler starting")
	sched.Start()
	return nil
}

// Stop shuts down the scheduler, waiting for in-flight jobs.
func Stop() error {
	if sched == nil {
		return ErrNotInitialized
	}
	stopOnce.Do(func() {
		log.Info().Msg("Scheduler stopping")
		stopErr = sched.Shutdown()
	})
	return stopErr
}

// AddJob registers a cron-based job. The task runs with start and completion
// logging under the job name.
func AddJob(name, cronExpr string, task func(), opts ...gocron.JobOption) (gocron.Job, error) {
	if sched == nil {
		return nil, ErrNotInitialized
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}
	jobLogger := log.With().Str("job_name", name).Str("cron", cronExpr).Logger()

	wrappedTask := func() {
		started := time.Now()
		jobLogger.Debug().Msg("Background job started")
		task()
		jobLogger.Debug().Dur("elapsed", time.Since(started)).Msg("Background job completed")
	}

	jobOpts := append([]gocron.JobOption{gocron.WithName(name)}, opts...)
	job, err := sched.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(wrappedTask),
		jobOpts...,
	)
	if err != nil {
		jobLogger.Error().Err(err).Msg("Failed to register background job")
		return nil, err
	}
	jobLogger.Info().Msg("Background job registered")
	return job, nil
}
