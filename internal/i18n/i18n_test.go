package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Run("query param wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/recommendations?lang=es", nil)
		req.Header.Set("Accept-Language", "en")
		assert.Equal(t, language.Spanish, ResolveTag(req))
	})

	t.Run("accept language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
		req.Header.Set("Accept-Language", "es-AR,es;q=0.9")
		assert.Equal(t, language.Spanish, ResolveTag(req))
	})

	t.Run("unsupported falls back to default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/recommendations?lang=ja", nil)
		assert.Equal(t, Default(), ResolveTag(req))
	})

	t.Run("nil request", func(t *testing.T) {
		assert.Equal(t, Default(), ResolveTag(nil))
	})
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, "No patterns detected yet. Keep adding numbers!", Printer(language.English).Sprintf(MsgNoPattern))
	assert.Equal(t, "No se han detectado patrones aún. ¡Sigue agregando números!", Printer(language.Spanish).Sprintf(MsgNoPattern))
	assert.Equal(t, "tercera", Printer(language.Spanish).Sprintf(LabelKey("third")))
	assert.Equal(t, "blacks", Printer(language.English).Sprintf(PluralLabelKey("black")))
}
