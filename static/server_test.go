package static

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerServesIndexForRoutes(t *testing.T) {
	for _, p := range []string{"/", "/?session=abc", "/some/route"} {
		w := httptest.NewRecorder()
		Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, p, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", p, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Champ Randomizer") {
			t.Fatalf("%s: expected the form page", p)
		}
	}
}

func TestHandlerServesAssets(t *testing.T) {
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for app.js, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/api/sessions") {
		t.Fatal("expected the app script")
	}
}

func TestAppScriptWaitsForNameSaves(t *testing.T) {
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	body := w.Body.String()
	// generate must be chained behind in-flight name saves
	if !strings.Contains(body, "$('generate').onclick = afterSaves(") {
		t.Fatal("generate should wait for pending name saves")
	}
	if !strings.Contains(body, "input.onchange = () => save(") {
		t.Fatal("name edits should register as pending saves")
	}
}
