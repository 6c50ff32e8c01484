package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/vytor/vocabflash/internal/logger"
)

// handleHealth returns a liveness probe - always returns 200 OK.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleReady returns 200 when the database answers a ping, 503 otherwise.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	if s.DB != nil {
		if err := s.DB.Ping(ctx); err != nil {
			log.Warn("readiness check failed - database: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("Database unavailable"))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Ready"))
}

type healthResponse struct {
	Status    string       `json:"status"`
	Timestamp string       `json:"timestamp"`
	Uptime    float64      `json:"uptime"`
	Version   string       `json:"version"`
	Memory    memoryReport `json:"memory"`
}

// memoryReport is heap usage in megabytes, rounded to two decimals.
type memoryReport struct {
	Used  float64 `json:"used"`
	Total float64 `json:"total"`
}

func (s *Server) handleAPIHealth(w http.ResponseWriter, r *http.Request) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	version := s.Version
	if version == "" {
		version = "dev"
	}

	writeJSON(w, r, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(s.StartTime).Seconds(),
		Version:   version,
		Memory: memoryReport{
			Used:  megabytes(ms.HeapAlloc),
			Total: megabytes(ms.HeapSys),
		},
	})
}

func megabytes(b uint64) float64 {
	return float64(b*100/(1024*1024)) / 100
}
