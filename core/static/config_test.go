package static_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spaserver/core/config"
	"github.com/dmitrymomot/spaserver/core/static"
)

func TestConfigFromEnv(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("STATIC_ROOT", "./dist")
	t.Setenv("STATIC_EXCLUDE_PATHS", "/api,/assets")

	var cfg static.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "./dist", cfg.Root)
	assert.Equal(t, static.DefaultIndex, cfg.Index)
	assert.Equal(t, []string{"/api", "/assets"}, cfg.ExcludePaths)
	assert.Empty(t, cfg.StripPrefix)
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"app/main.html": {Data: []byte("main")},
	}

	cfg := static.Config{
		Index:        "app/main.html",
		ExcludePaths: []string{"/api"},
		StripPrefix:  "/ui",
	}
	h := static.Handler(fsys, cfg.Options()...)

	get := func(target string) (int, string) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		body, _ := io.ReadAll(w.Result().Body)
		return w.Code, string(body)
	}

	code, body := get("/ui/settings")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "main", body)

	code, _ = get("/ui/api/users")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = get("/settings")
	assert.Equal(t, http.StatusNotFound, code)

	assert.Empty(t, static.Config{}.Options())
}
