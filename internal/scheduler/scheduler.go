package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/tcn-coffee/fieldbook/internal/config"
	"github.com/tcn-coffee/fieldbook/internal/repository/sheets"
	"github.com/tcn-coffee/fieldbook/internal/service/backup"
)

// Scheduler manages the nightly automatic backup job.
type Scheduler struct {
	cron      *cron.Cron
	backupSvc *backup.Service
	backupLog sheets.BackupLog
	cfg       config.Config
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance. backupLog may be nil when
// the spreadsheet log is not configured.
func NewScheduler(cfg config.Config, backupSvc *backup.Service, backupLog sheets.BackupLog, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Backup.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, scheduling in local time", zap.String("timezone", cfg.Backup.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		backupSvc: backupSvc,
		backupLog: backupLog,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers the nightly backup job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Backup.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.Backup.CronSchedule, s.runNightlyBackup); err != nil {
		s.logger.Error("failed to schedule nightly backup", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runNightlyBackup() {
	s.logger.Info("running nightly backup")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	path, doc, err := s.backupSvc.WriteFile(ctx, s.cfg.Backup.Dir, s.cfg.Backup.User)
	if err != nil {
		s.logger.Error("nightly backup failed", zap.Error(err))
		return
	}

	if s.backupLog == nil {
		return
	}

	if err := s.backupLog.AppendBackupSummary(ctx, doc, path); err != nil {
		s.logger.Error("failed to log backup summary", zap.Error(err))
	}
}
