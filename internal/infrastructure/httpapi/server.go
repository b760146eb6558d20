// Package httpapi exposes the latest summary snapshot over a read-only
// HTTP API. Every request recomputes its view from the unfiltered stored
// datasets, so filter parameters never interact across requests.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"patiodash/internal/aggregate"
	"patiodash/internal/domain"
	"patiodash/internal/filter"
	"patiodash/internal/usecase"
)

// Server serves the dashboard API.
type Server struct {
	store   *usecase.Store
	builder *usecase.SnapshotBuilder
	format  *aggregate.Formatter
	loc     *time.Location
	logger  *slog.Logger
	engine  *gin.Engine
}

// New wires the router. A nil loc means time.Local.
func New(store *usecase.Store, builder *usecase.SnapshotBuilder, format *aggregate.Formatter, loc *time.Location, logger *slog.Logger) *Server {
	if loc == nil {
		loc = time.Local
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		store:   store,
		builder: builder,
		format:  format,
		loc:     loc,
		logger:  logger,
		engine:  engine,
	}

	engine.GET("/healthz", s.health)
	api := engine.Group("/api")
	api.GET("/bascula", s.bascula)
	api.GET("/general", s.general)
	api.GET("/filters", s.filters)

	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}
	if s.logger != nil {
		s.logger.Info("api listening", "addr", addr)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// aggView carries locale-formatted numbers next to the raw aggregate:
// counts with no decimals, QQs with up to two, kilos with none.
type aggView struct {
	Camiones string `json:"camiones"`
	Kilos    string `json:"kilos"`
	QQs      string `json:"qqs"`
	Sacos    string `json:"sacos"`
}

func (s *Server) view(a domain.BasculaAggregate) aggView {
	return aggView{
		Camiones: s.format.Count(a.Trucks),
		Kilos:    s.format.Kilos(a.Kilos),
		QQs:      s.format.QQs(a.QQs),
		Sacos:    s.format.Kilos(a.Sacos),
	}
}

type statusGroupResponse struct {
	Status  string                  `json:"status"`
	Totals  domain.BasculaAggregate `json:"totals"`
	Display aggView                 `json:"display"`
}

type sectionResponse struct {
	Category domain.Category       `json:"category"`
	Location string                `json:"location,omitempty"`
	Statuses []statusGroupResponse `json:"statuses"`
}

type basculaResponse struct {
	Error        string                  `json:"error,omitempty"`
	Total        domain.BasculaAggregate `json:"total"`
	TotalDisplay aggView                 `json:"totalDisplay"`
	Sections     []sectionResponse       `json:"sections"`
}

func (s *Server) bascula(c *gin.Context) {
	rng := filter.ParseRange(c.Query("from"), c.Query("to"), s.loc)
	basRes, _, _ := s.store.Sources()

	summary := s.builder.Bascula(basRes, rng)
	resp := basculaResponse{
		Error:        summary.Error,
		Total:        summary.Total,
		TotalDisplay: s.view(summary.Total),
		Sections:     make([]sectionResponse, 0, len(summary.Sections)),
	}
	for _, section := range summary.Sections {
		sr := sectionResponse{Category: section.Category, Location: section.Location}
		for _, st := range section.Statuses {
			sr.Statuses = append(sr.Statuses, statusGroupResponse{
				Status:  st.Status,
				Totals:  st.Totals,
				Display: s.view(st.Totals),
			})
		}
		resp.Sections = append(resp.Sections, sr)
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) general(c *gin.Context) {
	f := filter.General{
		Proceso: c.DefaultQuery("proceso", domain.FilterAll),
		Patio:   c.DefaultQuery("patio", domain.FilterAll),
	}

	_, genRes, fecRes := s.store.Sources()
	summary := s.builder.General(genRes, fecRes, f, time.Now().In(s.loc))
	c.JSON(http.StatusOK, summary)
}

func (s *Server) filters(c *gin.Context) {
	basRes, genRes, _ := s.store.Sources()
	c.JSON(http.StatusOK, s.builder.Options(genRes, basRes))
}

func (s *Server) health(c *gin.Context) {
	basAt, genAt := s.store.RefreshedAt()
	c.JSON(http.StatusOK, gin.H{
		"basculaRefreshedAt": timeOrNull(basAt),
		"generalRefreshedAt": timeOrNull(genAt),
	})
}

func timeOrNull(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
