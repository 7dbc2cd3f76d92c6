package sync

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/pkg/config"
	"github.com/jhoicas/turnover-api/pkg/logger"
)

// Scheduler dispara la corrida diaria a la hora local configurada.
type Scheduler struct {
	orch *Orchestrator
	cfg  config.SyncConfig
	log  *logger.Logger
}

// NewScheduler construye el scheduler sobre el orquestador.
func NewScheduler(orch *Orchestrator, cfg config.SyncConfig, log *logger.Logger) *Scheduler {
	return &Scheduler{orch: orch, cfg: cfg, log: log.Component("scheduler")}
}

// Run bloquea disparando la corrida diaria a su hora hasta que el contexto se cancele.
// Si la corrida anterior sigue en curso, el disparo se omite y se espera al siguiente día.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		next := s.nextRun(time.Now())
		s.log.Info().Time("next_run", next).Msg("corrida diaria programada")

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if _, err := s.orch.StartDaily(ctx); err != nil {
			if errors.Is(err, domain.ErrSyncInProgress) {
				s.log.Warn().Msg("corrida diaria aún en curso, se omite este disparo")
				continue
			}
			s.log.Error().Err(err).Msg("no se pudo iniciar la corrida diaria")
		}
	}
}

// nextRun devuelve el próximo disparo: hoy a la hora configurada, o mañana si ya pasó.
func (s *Scheduler) nextRun(now time.Time) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(),
		s.cfg.DailyHour, s.cfg.DailyMinute, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}
