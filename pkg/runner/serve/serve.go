package serve

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tableflip.dev/whatson/pkg/event"
	"tableflip.dev/whatson/pkg/logging"
	"tableflip.dev/whatson/pkg/stubserver"
	"tableflip.dev/whatson/pkg/timeutil"
)

// Serve runs the bundled stub backend until the context is cancelled.
type Serve struct {
	Listen string
	Events []event.Event
	Clock  timeutil.Clock
}

func (n *Serve) Do(ctx context.Context) error {
	if n.Listen == "" {
		n.Listen = "localhost:8787"
	}
	clock := n.Clock
	if clock == nil {
		clock = timeutil.System()
	}
	events := n.Events
	if len(events) == 0 {
		events = stubserver.SampleEvents(clock.Now())
	}

	srv := &http.Server{
		Addr:    n.Listen,
		Handler: stubserver.New(events, clock).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logging.Info("stub backend listening", "addr", n.Listen, "events", len(events))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
