package scheduler

import (
	"fmt"
	"time"

	"github.com/Dan9191/blog-service/internal/models"
	"github.com/Dan9191/blog-service/internal/repository"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// digestWindow is how far back each digest looks
const digestWindow = 24 * time.Hour

// DigestSender delivers activity summaries to admins
type DigestSender interface {
	SendAdminDigest(to string, stats *models.ContentStats) error
}

// Scheduler runs periodic background jobs
type Scheduler struct {
	cron   *cron.Cron
	stats  repository.StatsRepository
	sender DigestSender
	log    *logrus.Logger
}

// NewScheduler initializes a new scheduler
func NewScheduler(stats repository.StatsRepository, sender DigestSender, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		stats:  stats,
		sender: sender,
		log:    log,
	}
}

// Start registers the digest job on the given cron schedule and starts the
// scheduler in the background.
func (s *Scheduler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.runDigest); err != nil {
		return fmt.Errorf("failed to schedule digest job: %w", err)
	}
	s.cron.Start()
	s.log.Infof("Digest job scheduled: %s", schedule)
	return nil
}

// Stop halts the scheduler; running jobs finish first
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runDigest() {
	stats, err := s.stats.ContentStats(time.Now().Add(-digestWindow))
	if err != nil {
		s.log.Errorf("Digest stats query failed: %v", err)
		return
	}

	admins, err := s.stats.ListAdminEmails()
	if err != nil {
		s.log.Errorf("Digest admin lookup failed: %v", err)
		return
	}

	for _, admin := range admins {
		if err := s.sender.SendAdminDigest(admin, stats); err != nil {
			s.log.Errorf("Digest for %s not sent: %v", admin, err)
		}
	}
	s.log.Infof("Digest run complete: %d admins, %d new posts", len(admins), stats.NewPosts)
}
