package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/angelmondragon/shopinsights-backend/pkg/errors"
	"github.com/angelmondragon/shopinsights-backend/pkg/logger"
	"github.com/angelmondragon/shopinsights-backend/pkg/types"
)

// WriteSuccess writes the raw payload with 200.
func WriteSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

// WriteCreated writes the created record with 201.
func WriteCreated(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

// WriteDeleted confirms a delete with the prior state under entity.
func WriteDeleted(w http.ResponseWriter, entity, message string, record any) {
	writeJSON(w, http.StatusOK, types.NewDeleteEnvelope(entity, message, record))
}

// WriteError is the single shaping point for failures. Untyped errors become
// internal 500s carrying the cause text.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Internal(err, "unexpected error")
	}
	meta := pkgerrors.MetadataFor(typed.Kind())

	payload := types.ErrorEnvelope{Error: typed.Message()}
	if meta.Public {
		payload.Code = string(typed.Code())
	} else {
		payload.Error = "Internal server error: " + internalCause(typed)
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)
		ctx = logg.WithFields(ctx, map[string]any{
			"error_kind":    dump.Kind,
			"error_code":    dump.Code,
			"error_chain":   dump.Chain,
			"pg_code":       dump.PGCode,
			"pg_message":    dump.PGMessage,
			"pg_table":      dump.PGTable,
			"pg_constraint": dump.PGConstraint,
			"pg_column":     dump.PGColumn,
			"pg_detail":     dump.PGDetail,
			"status":        meta.HTTPStatus,
		})
		if meta.HTTPStatus >= http.StatusInternalServerError {
			logg.Error(ctx, "request.error", err)
		} else {
			logg.Warn(ctx, "request.rejected")
		}
	}

	writeJSON(w, meta.HTTPStatus, payload)
}

func internalCause(e *pkgerrors.Error) string {
	if cause := e.Unwrap(); cause != nil {
		return cause.Error()
	}
	if msg := e.Message(); msg != "" {
		return msg
	}
	return "unknown error"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
