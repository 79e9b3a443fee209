package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mindcheck/internal/db"
	"github.com/terraincognita07/mindcheck/internal/i18n"
	"github.com/terraincognita07/mindcheck/internal/services"
	"github.com/terraincognita07/mindcheck/internal/templates"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminPassword  = "correct horse battery staple"
	testAdminSecretKey = "0123456789abcdef0123456789abcdef"
)

const testCatalogJSON = `{
  "disorders": [
    {
      "name": "Generalized Anxiety Disorder (GAD)",
      "description": "Persistent and excessive worry.",
      "symptoms": ["excessive_worry", "restlessness", "fatigue"],
      "early_signs": "Worry that is hard to control",
      "threat_assessment": "Seek help if worry disrupts daily life."
    },
    {
      "name": "Major Depressive Disorder",
      "description": "Persistent low mood and loss of interest.",
      "symptoms": ["depressed_mood", "loss_of_interest", "fatigue", "sleep_disturbance"],
      "early_signs": ["Withdrawing from friends", "Changes in sleep"],
      "threat_assessment": {
        "risk_factors": ["Family history"],
        "when_to_seek_help": ["Symptoms last more than two weeks"]
      }
    },
    {
      "name": "Broken Entry",
      "symptoms": {"unexpected": true}
    }
  ]
}`

type testAppOptions struct {
	adminEnabled bool
}

type testApp struct {
	app     *fiber.App
	catalog *services.CatalogService
}

func newTestApp(t *testing.T, options testAppOptions) testApp {
	t.Helper()

	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "data.json")
	if err := os.WriteFile(catalogPath, []byte(testCatalogJSON), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	database, err := db.OpenSQLite(filepath.Join(dir, "mindcheck-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	catalog := services.NewCatalogService(services.CatalogSourceFile, catalogPath, db.NewDisorderRepository(database))
	if count := catalog.Load(); count != 3 {
		t.Fatalf("expected 3 catalog entries, got %d", count)
	}

	admin := services.NewAdminService("", "", 0)
	if options.adminEnabled {
		hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash admin password: %v", err)
		}
		admin = services.NewAdminService(string(hash), testAdminSecretKey, 0)
	}

	i18nManager, err := i18n.NewEmbeddedManager("en")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(catalog, admin, i18nManager, templates.Files, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	return testApp{app: NewApp(handler, AppOptions{}), catalog: catalog}
}

func (app testApp) do(t *testing.T, request *http.Request) *http.Response {
	t.Helper()

	response, err := app.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func newJSONRequest(method string, target string, body string) *http.Request {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	request.Header.Set("Accept", fiber.MIMEApplicationJSON)
	return request
}

func newFormRequest(target string, form string) *http.Request {
	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form))
	request.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return request
}

func decodeJSONResponse(t *testing.T, response *http.Response, target any) {
	t.Helper()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(body), err)
	}
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func fullAnswersJSON(values ...int) string {
	parts := make([]string, 0, len(values))
	for index, value := range values {
		parts = append(parts, fmt.Sprintf(`"q%d":%d`, index+1, value))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
