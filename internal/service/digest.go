package service

import (
	"context"

	"github.com/mikasr411/RouteBoss/internal/logger"

	"github.com/robfig/cron/v3"
)

// defaultDigestSpec runs the digest every morning at 07:00.
const defaultDigestSpec = "0 7 * * *"

// DigestService periodically rebuilds the worklist and logs a summary,
// so an operator watching the logs sees the day's load without asking.
type DigestService struct {
	worklist    Worklist
	log         *logger.Logger
	spec        string
	horizonDays int
}

func NewDigestService(worklist Worklist, log *logger.Logger, spec string, horizonDays int) *DigestService {
	if spec == "" {
		spec = defaultDigestSpec
	}
	if horizonDays <= 0 {
		horizonDays = defaultHorizonDays
	}
	return &DigestService{worklist: worklist, log: log, spec: spec, horizonDays: horizonDays}
}

// Run schedules the digest and blocks until ctx is canceled.
func (s *DigestService) Run(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(s.spec, func() { s.runOnce(ctx) }); err != nil {
		return validationErr("invalid digest cron spec %q: %v", s.spec, err)
	}
	c.Start()
	<-ctx.Done()
	stopped := c.Stop()
	<-stopped.Done()
	return nil
}

func (s *DigestService) runOnce(ctx context.Context) {
	entries, err := s.worklist.Build(ctx, s.horizonDays)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("digest_build_failed", "err", err)
		}
		return
	}
	overdue := 0
	dueNow := 0
	for _, e := range entries {
		if e.Status.IsOverdue {
			overdue++
		} else if e.Status.IsDue {
			dueNow++
		}
	}
	dueCustomers, err := s.worklist.DueCustomers(ctx)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("digest_customers_failed", "err", err)
		}
		return
	}
	if s.log != nil {
		s.log.Infow("worklist_digest",
			"horizon_days", s.horizonDays,
			"entries", len(entries),
			"overdue", overdue,
			"due", dueNow,
			"due_customers", len(dueCustomers),
		)
	}
}
