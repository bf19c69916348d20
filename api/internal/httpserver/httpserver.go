package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hint-relay/api/internal/handle"
	"hint-relay/api/internal/version"
)

const (
	EndPointHealth   = "/"
	EndPointHint     = "/hint"
	EndPointSolution = "/solution"
	EndPointMetrics  = "/metrics"
	EndPointVersion  = "/version"
)

// NewRouter wires the handlers behind the middleware chain. Preflight runs
// ahead of CORS and routing so OPTIONS never reaches a handler.
func NewRouter(h *handle.Handle, service string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), AccessLog(), Metrics(), Preflight(), CORS())

	r.GET(EndPointHealth, h.Health)
	r.POST(EndPointHint, h.Hint)
	r.POST(EndPointSolution, h.Solution)
	r.GET(EndPointMetrics, gin.WrapH(promhttp.Handler()))
	r.GET(EndPointVersion, func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get(service))
	})

	r.NoRoute(handle.NotFound)
	r.NoMethod(handle.MethodNotAllowed)
	return r
}

// Run serves handler on addr until ctx is cancelled, then drains in-flight
// requests for at most shutdownTimeout.
func Run(ctx context.Context, addr string, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
