package httpserver

import (
	"net/http"
	"time"

	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/config"
)

func New(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
