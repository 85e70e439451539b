package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/livescore-service/internal/config"
)

// Prefetcher warms the game cache on a schedule so the first reader of
// a busy day never pays the upstream round trip.
type Prefetcher struct {
	service *GameService
	cfg     *config.Config
	log     *logrus.Entry
	cron    *cron.Cron
}

func NewPrefetcher(service *GameService, cfg *config.Config, log *logrus.Logger) *Prefetcher {
	return &Prefetcher{
		service: service,
		cfg:     cfg,
		log:     log.WithField("service", "prefetcher"),
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start registers the warming job and starts the scheduler. It is a
// no-op when prefetching is disabled or the process runs on mock data,
// where there is no upstream worth warming.
func (p *Prefetcher) Start() error {
	if !p.cfg.PrefetchEnabled {
		p.log.Info("Prefetching disabled")
		return nil
	}
	if p.cfg.UseMockSportsData || !p.cfg.HasSportsAPI() {
		p.log.Info("Prefetching skipped: no live upstream configured")
		return nil
	}

	_, err := p.cron.AddFunc(p.cfg.PrefetchSchedule, p.warmToday)
	if err != nil {
		return err
	}
	p.cron.Start()
	p.log.WithField("schedule", p.cfg.PrefetchSchedule).Info("Prefetcher started")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (p *Prefetcher) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	p.log.Info("Prefetcher stopped")
}

func (p *Prefetcher) warmToday() {
	date := time.Now().Format("20060102")
	ctx, cancel := context.WithTimeout(context.Background(), 2*p.cfg.SportsAPITimeout)
	defer cancel()

	for _, sport := range p.service.Registry().Sports() {
		games, err := p.service.GamesByDate(ctx, date, sport, false)
		if err != nil {
			p.log.WithFields(logrus.Fields{
				"sport": sport,
				"date":  date,
			}).WithError(err).Warn("Prefetch failed")
			continue
		}
		p.log.WithFields(logrus.Fields{
			"sport": sport,
			"date":  date,
			"count": len(games),
		}).Debug("Prefetched games")
	}
}
