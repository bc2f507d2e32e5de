package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const reportDateLayout = "2006-01-02"

// DailyTurnoverJob summarizes the previous day's delivered turnover.
// Runs at midnight and logs the report so operators have a daily figure
// without querying the API.
type DailyTurnoverJob struct {
	handler queries.TurnoverReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyTurnoverJob creates the midnight turnover summary job.
func NewDailyTurnoverJob(handler queries.TurnoverReportQueryHandler, logger *slog.Logger) *DailyTurnoverJob {
	return &DailyTurnoverJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_turnover_job"),
	}
}

// Start schedules the job at midnight every day.
func (j *DailyTurnoverJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()

		yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(reportDateLayout)
		query := queries.NewTurnoverReportQuery(yesterday, yesterday)

		report, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Daily turnover job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Daily turnover summary",
			"date", yesterday,
			"orders", len(report.Orders),
			"total", report.Total.String())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily turnover job started (running at midnight)")
	return nil
}

// Stop stops the daily turnover job.
func (j *DailyTurnoverJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily turnover job stopped")
}
