package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/routeworks/docscan/internal/history"
	"github.com/routeworks/docscan/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the document analysis HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(env),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func newRouter(env *env) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/analyze", func(w http.ResponseWriter, r *http.Request) {
		var req model.RawDocument
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if req.Text == "" && req.HTMLContent == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No text provided"})
			return
		}

		result, err := env.Analyzer.Analyze(r.Context(), req)
		if err != nil {
			zap.S().Errorw("analysis failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Smart analysis failed",
				"details": err.Error(),
			})
			return
		}

		if _, err := env.History.Record(r.Context(), result, false); err != nil {
			zap.S().Warnw("recording history failed", "error", err)
		}
		writeJSON(w, http.StatusOK, result)
	})

	r.Post("/api/export", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Deliveries []model.DeliveryRecord `json:"deliveries"`
			HistoryID  string                 `json:"historyId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if len(req.Deliveries) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no deliveries to export"})
			return
		}

		summary := env.Exporter.Export(r.Context(), req.Deliveries)
		if summary.Success && req.HistoryID != "" {
			if err := env.History.MarkExported(r.Context(), req.HistoryID); err != nil {
				zap.S().Warnw("marking history exported failed", "id", req.HistoryID, "error", err)
			}
		}
		writeJSON(w, http.StatusOK, summary)
	})

	r.Get("/api/history", func(w http.ResponseWriter, r *http.Request) {
		entries, err := env.History.List(r.Context())
		if err != nil {
			zap.S().Errorw("listing history failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "history unavailable"})
			return
		}
		if entries == nil {
			entries = []history.Entry{}
		}
		writeJSON(w, http.StatusOK, entries)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Warnw("encoding response failed", "error", err)
	}
}
