package api

import (
	"net/http"
	"strings"
	"testing"
)

func adminLogin(t *testing.T, app testApp, password string) *http.Response {
	t.Helper()
	return app.do(t, newJSONRequest(http.MethodPost, "/api/admin/login", `{"password":"`+password+`"}`))
}

func adminToken(t *testing.T, app testApp) string {
	t.Helper()

	response := adminLogin(t, app, testAdminPassword)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected admin login to succeed, got %d", response.StatusCode)
	}
	payload := map[string]any{}
	decodeJSONResponse(t, response, &payload)
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatalf("expected token in %+v", payload)
	}
	return token
}

func TestAdminEndpointsDisabledWithoutPasswordHash(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, testAppOptions{})

	if response := adminLogin(t, app, "anything"); response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected login status 403, got %d", response.StatusCode)
	}
	if response := app.do(t, newJSONRequest(http.MethodPost, "/api/admin/catalog/reload", "")); response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected reload status 403, got %d", response.StatusCode)
	}
}

func TestAdminLoginThrottlesRepeatedFailures(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, testAppOptions{adminEnabled: true})

	for attempt := 0; attempt < adminLoginAttemptLimit; attempt++ {
		if response := adminLogin(t, app, "wrong"); response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected status 401, got %d", attempt, response.StatusCode)
		}
	}

	response := adminLogin(t, app, testAdminPassword)
	if response.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 after repeated failures, got %d", response.StatusCode)
	}
	if response.Header.Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}

func TestAdminCatalogImportRequiresToken(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, testAppOptions{adminEnabled: true})

	tests := []string{"", "Bearer", "Bearer not-a-token", "Basic abc"}
	for _, header := range tests {
		request := newJSONRequest(http.MethodPost, "/api/admin/catalog", `{"disorders":[]}`)
		if header != "" {
			request.Header.Set("Authorization", header)
		}
		if response := app.do(t, request); response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("authorization %q: expected status 401, got %d", header, response.StatusCode)
		}
	}
	if app.catalog.Count() != 3 {
		t.Fatalf("expected catalog to stay unchanged, got %d entries", app.catalog.Count())
	}
}

func TestAdminCatalogImportAndReload(t *testing.T) {
	t.Parallel()
	app := newTestApp(t, testAppOptions{adminEnabled: true})
	token := adminToken(t, app)

	invalid := newJSONRequest(http.MethodPost, "/api/admin/catalog", `{"disorders":{"name":"x"}}`)
	invalid.Header.Set("Authorization", "Bearer "+token)
	if response := app.do(t, invalid); response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for invalid catalog, got %d", response.StatusCode)
	}
	if app.catalog.Count() != 3 {
		t.Fatalf("expected invalid import to keep previous catalog, got %d", app.catalog.Count())
	}

	document := `{"disorders":[{"name":"Panic Disorder","symptoms":["panic_attacks","palpitations"]}]}`
	importRequest := newJSONRequest(http.MethodPost, "/api/admin/catalog", document)
	importRequest.Header.Set("Authorization", "bearer "+token)
	importResponse := app.do(t, importRequest)
	if importResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected import status 200, got %d", importResponse.StatusCode)
	}

	matchResponse := app.do(t, newJSONRequest(http.MethodPost, "/api/match", `{"symptoms":["panic","racing_heart"]}`))
	body := readBody(t, matchResponse)
	if !strings.Contains(body, `"name":"Panic Disorder"`) || !strings.Contains(body, `"score":2`) {
		t.Fatalf("expected imported catalog to be live, got %s", body)
	}

	reload := newJSONRequest(http.MethodPost, "/api/admin/catalog/reload", "")
	reload.Header.Set("Authorization", "Bearer "+token)
	reloadResponse := app.do(t, reload)
	if reloadResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected reload status 200, got %d", reloadResponse.StatusCode)
	}
	if app.catalog.Count() != 3 {
		t.Fatalf("expected file reload to restore 3 entries, got %d", app.catalog.Count())
	}
}
