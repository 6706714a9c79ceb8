package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunOnSchedule fires a full send pass once a day at runAt, local time.
// The summary is discarded apart from a log line, like any scheduled run.
func (s service) RunOnSchedule(runAt string) {
	for {
		now := time.Now()
		next, err := nextRun(now, runAt)
		if err != nil {
			zap.L().Error("Invalid SCHEDULE_AT value, scheduler disabled", zap.String("value", runAt), zap.Error(err))
			return
		}

		time.Sleep(next.Sub(now))

		summary, err := s.Run(context.Background())
		if err != nil {
			zap.L().Error("Scheduled run failed", zap.Error(err))
			continue
		}
		zap.L().Info("Scheduled run finished", zap.Int("attempted", summary.Sent))
	}
}

func nextRun(now time.Time, runAt string) (time.Time, error) {
	at, err := time.Parse("15:04", runAt)
	if err != nil {
		return time.Time{}, err
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next, nil
}
