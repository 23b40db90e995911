// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API of the portfolio backend. Each
// handler group wraps one service; errors are mapped to HTTP statuses in
// one place so every route reports them the same way.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"portfolio/internal/cache"
	"portfolio/internal/models"
	"portfolio/internal/service"
	"portfolio/internal/store"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("encode response failed", "error", err)
	}
}

// writeMessage writes a {"message": ...} success body.
func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// writeError maps err to a status code and a {"detail": ...} body. op names
// the failed operation in the log.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verrs models.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": verrs})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": err.Error()})
	case errors.Is(err, store.ErrUnavailable):
		slog.Error(op+" failed", "error", err, "path", r.URL.Path)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"detail": "Service temporarily unavailable"})
	default:
		slog.Error(op+" failed", "error", err, "path", r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error"})
	}
}

// decodeJSON reads a single JSON object from the request body into dst.
// Malformed bodies and ill-typed fields are reported as ValidationErrors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err == nil {
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return models.ValidationErrors{{Field: "body", Message: "unexpected data after JSON object"}}
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr):
		return models.ValidationErrors{{Field: typeErr.Field, Message: "must be of type " + typeErr.Type.String()}}
	case errors.As(err, &maxErr):
		return models.ValidationErrors{{Field: "body", Message: "request body too large"}}
	default:
		return models.ValidationErrors{{Field: "body", Message: "invalid JSON: " + err.Error()}}
	}
}

// serveCached answers a listing from the response cache, falling back to
// load and caching its encoded result under the generation read before the
// load. X-Cache reports HIT or MISS.
func serveCached(w http.ResponseWriter, r *http.Request, rc *cache.ResponseCache, key, op string, load func(context.Context) (any, error)) {
	ctx := r.Context()

	body, gen, ok := rc.Get(ctx, key)
	if ok {
		w.Header().Set("X-Cache", "HIT")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(body)
		return
	}

	data, err := load(ctx)
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	body, err = json.Marshal(data)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	body = append(body, '\n')
	rc.Set(ctx, key, gen, body)

	w.Header().Set("X-Cache", "MISS")
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(body)
}
