package http

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/application"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/service"
)

func NewHandler(application application.Application, logger *slog.Logger) http.Handler {
	logger = service.ComponentLogger(logger)

	mux := http.NewServeMux()
	WebPageRoute(mux)
	MapStyleRoute(mux, application, logger)
	StaticMapRoute(mux, application, logger)

	return mux
}

func ServeApplication(l net.Listener, application application.Application, logger *slog.Logger) error {
	return http.Serve(l, NewHandler(application, logger))
}
