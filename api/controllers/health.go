package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/shopinsights-backend/api/responses"
	"github.com/angelmondragon/shopinsights-backend/pkg/config"
	"github.com/angelmondragon/shopinsights-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
)

const (
	envHeader    = "X-ShopInsights-Env"
	readyTimeout = 2 * time.Second
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the store and reports 503 when it does not answer.
func HealthReady(cfg *config.Config, logg *logger.Logger, store db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.KindDependency, pkgerrors.CodeDependencyUnavailable, "database not configured"))
			return
		}
		if err := store.Ping(ctx); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.KindDependency, pkgerrors.CodeDependencyUnavailable, err, "database unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
