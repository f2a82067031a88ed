package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/clubkit/clubkit/internal/db"
	dbgen "github.com/clubkit/clubkit/internal/db/generated"
	"github.com/clubkit/clubkit/internal/email"
)

const (
	defaultReminderHoursBefore = 24
	reminderJobWindow          = 15 * time.Minute
)

// RegisterReminderJobs registers the scheduled session reminder task.
// Every tick it looks for sessions starting hoursBefore from now, inside a
// window matching the tick interval, and emails everyone who marked
// themselves present or maybe.
func RegisterReminderJobs(database *db.DB, emailClient email.Sender, hoursBefore int) error {
	if database == nil {
		return fmt.Errorf("reminder jobs require database")
	}
	if hoursBefore <= 0 {
		hoursBefore = defaultReminderHoursBefore
	}

	jobName := "session_reminders"
	cronExpr := "*/15 * * * *"
	jobLogger := log.With().
		Str("component", "session_reminders_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Logger()

	_, err := AddJob(jobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		if emailClient == nil {
			jobLogger.Debug().Msg("Reminder job skipped: email client not configured")
			return
		}

		now := time.Now().UTC()
		windowStart := now.Add(time.Duration(hoursBefore) * time.Hour)
		windowEnd := windowStart.Add(reminderJobWindow)

		sessions, err := database.Queries.ListSessionsStartingBetween(ctx, dbgen.ListSessionsStartingBetweenParams{
			StartTime: windowStart,
			EndTime:   windowEnd,
		})
		if err != nil {
			jobLogger.Error().Err(err).Msg("Failed to load sessions for reminder job")
			return
		}

		for _, session := range sessions {
			sessionLogger := jobLogger.With().Str("session_id", session.ID).Logger()
			sessionCtx := sessionLogger.WithContext(ctx)
			if err := sendSessionReminders(sessionCtx, database, emailClient, session, &sessionLogger); err != nil {
				sessionLogger.Error().Err(err).Msg("Failed to send session reminders")
			}
		}
	}, gocron.WithSingletonMode(gocron.LimitModeWait))
	if err != nil {
		return fmt.Errorf("add session reminder job: %w", err)
	}

	jobLogger.Info().Msg("Session reminder job registered")
	return nil
}

func sendSessionReminders(ctx context.Context, database *db.DB, emailClient email.Sender, session dbgen.Session, logger *zerolog.Logger) error {
	club, err := database.Queries.GetClub(ctx, session.ClubID)
	if err != nil {
		return fmt.Errorf("load club: %w", err)
	}
	attendees, err := database.Queries.ListAttendeesWithEmail(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("load attendees: %w", err)
	}
	if len(attendees) == 0 {
		return nil
	}

	date, startTime := email.FormatSessionDateTime(session.Date)
	message := email.BuildSessionReminder(email.SessionReminderDetails{
		ClubName:    club.Name,
		SessionName: session.Name,
		Date:        date,
		StartTime:   startTime,
		Location:    session.Location.String,
	})

	for _, attendee := range attendees {
		email.SendSessionReminder(ctx, emailClient, attendee.Email.String, message, logger)
	}
	logger.Info().Int("recipients", len(attendees)).Msg("Session reminders queued")
	return nil
}
