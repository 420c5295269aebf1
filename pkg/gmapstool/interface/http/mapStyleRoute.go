package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/application"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/repository"
)

func MapStyleRoute(mux *http.ServeMux, application application.Application, logger *slog.Logger) {
	mux.HandleFunc("GET /styles", func(w http.ResponseWriter, req *http.Request) {
		names, err := application.ListStyles(req.Context())
		if err != nil {
			writeError(w, logger, err)
			return
		}

		writeJSON(w, logger, names)
	})

	mux.HandleFunc("GET /styles/{name}", func(w http.ResponseWriter, req *http.Request) {
		style, err := application.GetStyle(req.Context(), req.PathValue("name"))
		if err != nil {
			writeError(w, logger, err)
			return
		}

		writeJSON(w, logger, style)
	})

	mux.HandleFunc("GET /styles/{name}/colors", func(w http.ResponseWriter, req *http.Request) {
		colors, err := application.StyleColors(req.Context(), req.PathValue("name"))
		if err != nil {
			writeError(w, logger, err)
			return
		}

		writeJSON(w, logger, colors)
	})

	// the encoded form is the value of a static map "style" parameter
	mux.HandleFunc("GET /styles/{name}/encoded", func(w http.ResponseWriter, req *http.Request) {
		encoded, err := application.EncodedStyle(req.Context(), req.PathValue("name"))
		if err != nil {
			writeError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(encoded)); err != nil {
			logger.Debug("Failed to write response", "error", err)
		}
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(data); err != nil {
		logger.Debug("Failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", "status", status, "error", err)
	}
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrStyleNotFound):
		return http.StatusNotFound
	case isRemoteResourceError(err):
		return http.StatusBadGateway
	case isPositionError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
