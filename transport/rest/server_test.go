package rest

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStart(t *testing.T) {
	t.Run("Stops cleanly when the context is cancelled", func(t *testing.T) {
		// Given: a server on a random port
		ctx, cancel := context.WithCancel(context.Background())

		errCh := make(chan error, 1)
		go func() {
			errCh <- Start(ctx, "0", http.NotFoundHandler())
		}()

		// When: the context is cancelled
		time.Sleep(50 * time.Millisecond)
		cancel()

		// Then: Start returns without error
		select {
		case err := <-errCh:
			require.NoError(t, err)
		case <-time.After(shutdownTimeout + time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("Reports a bad listen address", func(t *testing.T) {
		err := Start(context.Background(), "not-a-port", http.NotFoundHandler())

		require.Error(t, err)
	})
}
