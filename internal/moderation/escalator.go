// Package moderation owns the only transition of a participant's suspension
// flag: enough reports trip it, and nothing here ever clears it.
package moderation

import (
	"context"
	"log/slog"

	"github.com/oggyb/matchcore/internal/db"
	"github.com/oggyb/matchcore/internal/domain"
	svcErr "github.com/oggyb/matchcore/internal/errors"
	"github.com/oggyb/matchcore/internal/metrics"
)

// SuspensionThreshold is the report count that suspends a target.
const SuspensionThreshold = 3

// MaxDetailsLength bounds the free-text part of a report.
const MaxDetailsLength = 2000

type ReportStore interface {
	Create(ctx context.Context, rep *db.Report) error
	CountForTarget(ctx context.Context, targetID uint64) (int64, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id uint64) (*db.User, error)
	SetReportCount(ctx context.Context, id uint64, count int64) error
	SetSuspended(ctx context.Context, id uint64) (bool, error)
}

type Escalator struct {
	reports ReportStore
	users   UserStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewEscalator(reports ReportStore, users UserStore, logger *slog.Logger, m *metrics.Metrics) *Escalator {
	return &Escalator{reports: reports, users: users, logger: logger, metrics: m}
}

// Outcome of a filed report. SuspensionTriggered is true only for the report
// that flipped the flag; callers should not expose it to the reporter.
type Outcome struct {
	Accepted            bool
	SuspensionTriggered bool
	ReportID            string
	ReportCount         int64
}

// FileReport appends a report and escalates to suspension at the threshold.
//
// Behavior:
//   - Self reports are rejected with ErrInvalidTarget. Unknown reporters or
//     targets get ErrNotFound, so a report always names two real accounts.
//   - The report is always appended, even when the target is already suspended.
//   - report_count is recomputed as the total number of reports on the target.
//   - At SuspensionThreshold the flag is set with a conditional update; only
//     the report that performed the transition sees SuspensionTriggered.
func (e *Escalator) FileReport(
	ctx context.Context,
	reporter, target uint64,
	reason domain.ReportReason,
	details string,
) (Outcome, error) {
	if _, err := domain.ParseReportReason(string(reason)); err != nil {
		return Outcome{}, err
	}
	if reporter == target {
		return Outcome{}, svcErr.ErrInvalidTarget
	}
	if len(details) > MaxDetailsLength {
		return Outcome{}, svcErr.ErrContentTooLarge
	}

	for _, id := range []uint64{reporter, target} {
		u, err := e.users.FindByID(ctx, id)
		if err != nil {
			return Outcome{}, err
		}
		if u == nil {
			return Outcome{}, svcErr.ErrNotFound
		}
	}

	rep := &db.Report{ReporterID: reporter, TargetID: target, Reason: string(reason), Details: details}
	if err := e.reports.Create(ctx, rep); err != nil {
		return Outcome{}, err
	}
	e.metrics.Reported(string(reason))

	count, err := e.reports.CountForTarget(ctx, target)
	if err != nil {
		return Outcome{}, err
	}
	if err := e.users.SetReportCount(ctx, target, count); err != nil {
		return Outcome{}, err
	}

	out := Outcome{Accepted: true, ReportID: rep.ID, ReportCount: count}
	if count < SuspensionThreshold {
		return out, nil
	}

	changed, err := e.users.SetSuspended(ctx, target)
	if err != nil {
		return Outcome{}, err
	}
	if changed {
		out.SuspensionTriggered = true
		e.metrics.Suspended()
		e.logger.Warn("participant suspended", "target_id", target, "report_count", count)
	}
	return out, nil
}
