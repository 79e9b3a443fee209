package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/mindcheck/internal/db"
	"golang.org/x/crypto/bcrypt"
)

const cliCatalogJSON = `{"disorders":[
  {"name":"Major Depressive Disorder","symptoms":["depressed_mood","loss_of_interest","fatigue"]},
  {"name":"Generalized Anxiety Disorder","symptoms":["excessive_worry","fatigue"]}
]}`

func writeCLICatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(cliCatalogJSON), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestHashAdminPassword(t *testing.T) {
	t.Parallel()

	if _, err := HashAdminPassword("short", bcrypt.MinCost); !errors.Is(err, ErrAdminPasswordTooShort) {
		t.Fatalf("expected ErrAdminPasswordTooShort, got %v", err)
	}

	hash, err := HashAdminPassword("a sufficiently long password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("a sufficiently long password")); err != nil {
		t.Fatalf("expected hash to verify: %v", err)
	}
}

func TestGenerateAdminPasswordAlphabet(t *testing.T) {
	t.Parallel()

	password, err := generateAdminPassword()
	if err != nil {
		t.Fatalf("generate password: %v", err)
	}
	if len(password) != generatedPasswordLength {
		t.Fatalf("generated password len = %d, want %d", len(password), generatedPasswordLength)
	}
	for _, char := range password {
		if !strings.ContainsRune(generatedPasswordSymbols, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
}

func TestRunHashPasswordCommandGenerate(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := RunHashPasswordCommand(nil, &out, true); err != nil {
		t.Fatalf("hash-password --generate: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %q", out.String())
	}
	password := strings.TrimPrefix(lines[0], "Generated admin password: ")
	hash := strings.TrimPrefix(lines[1], "ADMIN_PASSWORD_HASH=")
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		t.Fatalf("expected printed hash to match printed password: %v", err)
	}
}

func TestReadLineTrimsLineEnding(t *testing.T) {
	t.Parallel()

	line, err := readLine(strings.NewReader("secret value\r\nnext"))
	if err != nil {
		t.Fatalf("read line: %v", err)
	}
	if line != "secret value" {
		t.Fatalf("unexpected line %q", line)
	}
}

func TestRunImportCatalogCommand(t *testing.T) {
	t.Parallel()

	catalogPath := writeCLICatalog(t)
	dbPath := filepath.Join(t.TempDir(), "store", "mindcheck.db")

	var out bytes.Buffer
	if err := RunImportCatalogCommand(dbPath, catalogPath, &out); err != nil {
		t.Fatalf("import catalog: %v", err)
	}
	if !strings.Contains(out.String(), "Imported 2 disorders") {
		t.Fatalf("unexpected output %q", out.String())
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer db.Close(database)

	records, err := db.NewDisorderRepository(database).ListOrdered()
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 2 || records[0].Slug != "major-depressive-disorder" || records[0].SymptomCount != 3 {
		t.Fatalf("unexpected stored records %+v", records)
	}
}

func TestRunImportCatalogCommandRejectsInvalidDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"disorders": "nope"}`), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if err := RunImportCatalogCommand(filepath.Join(t.TempDir(), "mindcheck.db"), path, &bytes.Buffer{}); err == nil {
		t.Fatal("expected invalid catalog to fail")
	}
}

func TestRunCheckCommandReport(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := RunCheckCommand(CheckOptions{
		CatalogPath: writeCLICatalog(t),
		Symptoms:    []string{"low_mood", "tired"},
		Answers:     []int{2, 2, 1, 1, 1, 1, 1, 1, 0},
		Language:    "en",
	}, &out)
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	report := out.String()
	for _, fragment := range []string{
		"Total score: 10 / 27 - moderate",
		"Major Depressive Disorder: 2 of 3 listed symptoms match [depressed mood, fatigue]",
		"Generalized Anxiety Disorder: 1 of 2 listed symptoms match [fatigue]",
		"not a diagnosis",
	} {
		if !strings.Contains(report, fragment) {
			t.Fatalf("expected report to contain %q, got:\n%s", fragment, report)
		}
	}
	if strings.Index(report, "Major Depressive") > strings.Index(report, "Generalized Anxiety") {
		t.Fatal("expected higher score first")
	}
}

func TestRunCheckCommandIncompleteAnswers(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := RunCheckCommand(CheckOptions{
		CatalogPath: filepath.Join(t.TempDir(), "missing.json"),
		Answers:     []int{1, 1, 1},
		Language:    "en",
	}, &out)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out.String(), "Please answer all questions. (q4)") {
		t.Fatalf("expected missing q4 notice, got %q", out.String())
	}
	if !strings.Contains(out.String(), "No symptoms were selected.") {
		t.Fatalf("expected no-symptom notice, got %q", out.String())
	}

	if err := RunCheckCommand(CheckOptions{Answers: []int{4}}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected out-of-range answer to fail")
	}
}
