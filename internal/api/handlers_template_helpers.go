package api

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"t":             templateTranslate,
		"tf":            templateTranslatef,
		"symptomLabel":  templateSymptomLabel,
		"severityClass": templateSeverityClass,
		"titleCase":     templateTitleCase,
	}
}

func parsePageTemplates(files fs.FS, funcMap template.FuncMap, pages []string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFS(files, "base.html", page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", handler.withTemplateDefaults(c, data)); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func templateTranslate(messages map[string]string, key string) string {
	return translateMessage(messages, key)
}

func templateTranslatef(messages map[string]string, key string, args ...any) string {
	return fmt.Sprintf(translateMessage(messages, key), args...)
}

// templateSymptomLabel prefers a localized chip label and falls back to the
// English label shipped with the vocabulary.
func templateSymptomLabel(messages map[string]string, value string, fallback string) string {
	key := symptomTranslationKey(value)
	if label := translateMessage(messages, key); label != key {
		return label
	}
	return fallback
}

func templateSeverityClass(category string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(category)), " ", "-")
}

func templateTitleCase(lang string, value string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return cases.Title(tag).String(value)
}
