package http

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/application"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/service"
)

func StaticMapRoute(mux *http.ServeMux, application application.Application, logger *slog.Logger) {
	mux.HandleFunc("GET /staticmap", func(w http.ResponseWriter, req *http.Request) {
		staticReq, err := parseStaticMapRequest(req.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		requestURL, err := application.StaticMapURL(req.Context(), staticReq)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		http.Redirect(w, req, requestURL, http.StatusFound)
	})

	mux.HandleFunc("GET /staticmap.png", func(w http.ResponseWriter, req *http.Request) {
		staticReq, err := parseStaticMapRequest(req.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		image, contentType, err := application.StaticMapImage(req.Context(), staticReq)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		if contentType == "" {
			contentType = "image/png"
		}
		w.Header().Set("Content-Type", contentType)

		if _, err := w.Write(image); err != nil {
			logger.Debug("Failed to write response", "error", err)
		}
	})
}

func parseStaticMapRequest(query url.Values) (application.StaticMapRequest, error) {
	staticReq := application.StaticMapRequest{
		Style:   query.Get("style"),
		Address: query.Get("address"),
		Static: entities.StaticOptions{
			Size:    query.Get("size"),
			MapType: query.Get("maptype"),
		},
	}

	if center := query.Get("center"); center != "" {
		ll, err := service.ParseLatLng(center)
		if err != nil {
			return staticReq, err
		}
		staticReq.Center = &ll
	}

	if zoom := query.Get("zoom"); zoom != "" {
		z, err := strconv.Atoi(zoom)
		if err != nil {
			return staticReq, err
		}
		staticReq.Zoom = &z
	}

	if scale := query.Get("scale"); scale != "" {
		s, err := strconv.Atoi(scale)
		if err != nil {
			return staticReq, err
		}
		staticReq.Static.Scale = s
	}

	for _, position := range query["marker"] {
		ll, err := service.ParseLatLng(position)
		if err != nil {
			return staticReq, err
		}
		staticReq.Markers = append(staticReq.Markers, entities.Marker{Position: ll})
	}

	return staticReq, nil
}

func isRemoteResourceError(err error) bool {
	var remoteErr *entities.RemoteResourceError
	return errors.As(err, &remoteErr)
}

func isPositionError(err error) bool {
	var configErr *entities.ConfigurationError
	return errors.As(err, &configErr) && configErr.Field == "position"
}
