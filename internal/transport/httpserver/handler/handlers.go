package handler

import (
	"context"
	"net/http"

	productiondomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/production"
	profiledomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/profile"
	salesdomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/sales"
	statsdomain "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/domain/stats"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/pkg/clients/supabase"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/pkg/logger"
)

// IdentityClient is the subset of the hosted identity API the handlers use.
type IdentityClient interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*supabase.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

type Handlers struct {
	Identity   IdentityClient
	Profiles   *profiledomain.Service
	Production *productiondomain.Service
	Sales      *salesdomain.Service
	Stats      *statsdomain.Service
	log        logger.Logger
}

func New(identity IdentityClient, profiles *profiledomain.Service, production *productiondomain.Service, sales *salesdomain.Service, stats *statsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Identity:   identity,
		Profiles:   profiles,
		Production: production,
		Sales:      sales,
		Stats:      stats,
		log:        log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
