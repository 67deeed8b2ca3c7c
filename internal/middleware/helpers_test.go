package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/soundhaus/locale-service/internal/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// failingFetcher forces the store onto its built-in tables, which carry the
// error strings the middleware translates.
type failingFetcher struct{}

func (failingFetcher) FetchLocale(ctx context.Context, code string) ([]byte, error) {
	return nil, errors.New("no bundle source in tests")
}

func newTestEngine(t *testing.T) *i18n.Engine {
	t.Helper()

	registry, err := i18n.NewRegistry("en", i18n.LocalesFromCodes([]string{"en", "es"}))
	require.NoError(t, err)

	engine := i18n.NewEngine(i18n.Options{
		Registry: registry,
		Store:    i18n.NewStore(failingFetcher{}, nil),
	})
	t.Cleanup(engine.Close)
	require.NoError(t, engine.Initialize(context.Background()))
	return engine
}
