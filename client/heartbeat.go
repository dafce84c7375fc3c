package client

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// heartbeat is the background task that refreshes presence while a
// session is authenticated. It is an explicit handle: started on
// entering the authenticated state, cancelled on leaving it, never an
// implicit side effect.
type heartbeat struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// startHeartbeat launches the ticker goroutine. Push failures are logged
// and swallowed; the timer keeps running until the context is cancelled.
func startHeartbeat(api *Client, token string, interval time.Duration, logger zerolog.Logger) *heartbeat {
	ctx, cancel := context.WithCancel(context.Background())
	hb := &heartbeat{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(hb.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := api.UpdateOnlineStatus(ctx, token, true); err != nil {
					logger.Warn().Err(err).Msg("heartbeat failed")
				}
			}
		}
	}()

	return hb
}

// stop cancels the task and waits for the goroutine to exit.
func (hb *heartbeat) stop() {
	hb.cancel()
	<-hb.done
}
