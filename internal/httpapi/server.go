// Package httpapi exposes the payroll operations as a JSON API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Simplici0/clt/internal/money"
	"github.com/Simplici0/clt/internal/payroll"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server serves calculations from a single Calculator.
type Server struct {
	calc  *payroll.Calculator
	log   *zap.Logger
	token string
}

// New returns a Server. An empty token leaves the API unauthenticated.
func New(calc *payroll.Calculator, log *zap.Logger, token string) *Server {
	return &Server{calc: calc, log: log, token: token}
}

type operationView struct {
	Name   string          `json:"name"`
	Title  string          `json:"title"`
	Params []payroll.Param `json:"params"`
}

type calculationRequest struct {
	Record payroll.Record `json:"record"`
	Args   payroll.Args   `json:"args"`
}

type figureView struct {
	payroll.Figure
	Display string `json:"display"`
}

type calculationResponse struct {
	Operation string       `json:"operation"`
	Title     string       `json:"title"`
	Schedule  string       `json:"schedule"`
	Figures   []figureView `json:"figures"`
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.requireToken)
		r.Get("/operations", s.handleListOperations)
		r.Post("/calculations/{operation}", s.handleCalculate)
	})

	return r
}

func (s *Server) handleListOperations(w http.ResponseWriter, r *http.Request) {
	ops := payroll.Operations()
	views := make([]operationView, 0, len(ops))
	for _, op := range ops {
		params := op.Params
		if params == nil {
			params = []payroll.Param{}
		}
		views = append(views, operationView{Name: op.Name, Title: op.Title, Params: params})
	}
	s.success(w, r, views)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	op, err := payroll.Lookup(chi.URLParam(r, "operation"))
	if err != nil {
		s.fail(w, r, http.StatusNotFound, "unknown_operation", err.Error())
		return
	}

	var req calculationRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid_body", fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := op.Validate(req.Record, req.Args); err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	figures := op.Run(s.calc, req.Record, req.Args)
	views := make([]figureView, 0, len(figures))
	for _, f := range figures {
		views = append(views, figureView{Figure: f, Display: money.Format(f.Amount)})
	}

	s.log.Debug("calculation completed",
		zap.String("operation", op.Name),
		zap.Float64("grossSalary", req.Record.GrossSalary),
		zap.Int("dependents", req.Record.Dependents),
		zap.String("requestId", requestIDFrom(r.Context())),
	)

	s.success(w, r, calculationResponse{
		Operation: op.Name,
		Title:     op.Title,
		Schedule:  s.calc.Schedule().Name,
		Figures:   views,
	})
}

// ListenAndServe runs the API on addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if s.token == "" {
		s.log.Warn("CLT_API_TOKEN is not set, the HTTP API is unauthenticated")
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr), zap.String("schedule", s.calc.Schedule().Name))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	}
}
