package syncer

import (
	"context"
	"time"
)

// Run refreshes every store once and then on each tick of interval until ctx
// is done. Failures are logged and recorded in the stores; the loop continues.
func (s *Syncer) Run(ctx context.Context, interval time.Duration) error {
	s.logger.Info().Dur("interval", interval).Msg("syncer: started")
	s.refreshLogged(ctx)
	if interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("syncer: stopped")
			return ctx.Err()
		case <-ticker.C:
			s.refreshLogged(ctx)
		}
	}
}

func (s *Syncer) refreshLogged(ctx context.Context) {
	if err := s.RefreshAll(ctx); err != nil && ctx.Err() == nil {
		s.logger.Error().Err(err).Msg("syncer: refresh failed")
	}
}
