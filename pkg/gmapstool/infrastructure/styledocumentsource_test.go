package infrastructure_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/domain/entities"
	"github.com/paulkoehlerdev/GmapsTool/pkg/gmapstool/infrastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styleServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /style.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"elementType":"labels","stylers":[{"visibility":"off"}]}]`))
	})
	mux.HandleFunc("GET /style.yaml", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("- elementType: labels\n  stylers:\n    - visibility: \"off\"\n"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestStyleDocumentSource_LoadJSON(t *testing.T) {
	server := styleServer(t)

	rules, err := infrastructure.NewStyleDocumentSource(server.Client()).Load(context.Background(), server.URL+"/style.json")
	require.NoError(t, err)
	assert.Equal(t, []entities.StyleRule{{
		ElementType: "labels",
		Stylers:     entities.Stylers{{Key: "visibility", Value: "off"}},
	}}, rules)
}

func TestStyleDocumentSource_LoadYAML(t *testing.T) {
	server := styleServer(t)

	rules, err := infrastructure.NewStyleDocumentSource(server.Client()).Load(context.Background(), server.URL+"/style.yaml?v=2")
	require.NoError(t, err)
	assert.Equal(t, []entities.StyleRule{{
		ElementType: "labels",
		Stylers:     entities.Stylers{{Key: "visibility", Value: "off"}},
	}}, rules)
}

func TestStyleDocumentSource_NotFound(t *testing.T) {
	server := styleServer(t)

	_, err := infrastructure.NewStyleDocumentSource(server.Client()).Load(context.Background(), server.URL+"/missing.json")

	var remoteErr *entities.RemoteResourceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
}
