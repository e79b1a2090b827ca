package scheduler

import (
	"fmt"

	"github.com/go-co-op/gocron/v2"
	"github.com/pvdata/pitchdata/internal/service"
)

type Scheduler struct {
	s         gocron.Scheduler
	collector *service.CollectorService
	runConfig service.RunConfig
}

func NewScheduler(collector *service.CollectorService, runConfig service.RunConfig) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:         s,
		collector: collector,
		runConfig: runConfig,
	}, nil
}

// Start registers the daily collection pass and starts the scheduler.
func (s *Scheduler) Start(hour, minute int) error {
	_, err := s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0))),
		gocron.NewTask(s.runCollection),
	)
	if err != nil {
		return fmt.Errorf("failed to create collection job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) runCollection() {
	s.collector.Run(s.runConfig)
}
