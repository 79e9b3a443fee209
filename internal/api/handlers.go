package api

import (
	"errors"
	"html/template"
	"io/fs"

	"github.com/terraincognita07/mindcheck/internal/i18n"
	"github.com/terraincognita07/mindcheck/internal/services"
)

type Handler struct {
	catalog      *services.CatalogService
	admin        *services.AdminService
	i18n         *i18n.Manager
	templates    map[string]*template.Template
	cookieSecure bool
	loginLimiter *attemptLimiter
	presenters   presenterSet
}

func NewHandler(catalog *services.CatalogService, admin *services.AdminService, i18nManager *i18n.Manager, templateFiles fs.FS, cookieSecure bool) (*Handler, error) {
	if catalog == nil {
		return nil, errors.New("catalog service is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if admin == nil {
		admin = services.NewAdminService("", "", 0)
	}

	templates, err := parsePageTemplates(templateFiles, newTemplateFuncMap(), []string{
		"index",
		"results",
		"details",
		"not_found",
	})
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		catalog:      catalog,
		admin:        admin,
		i18n:         i18nManager,
		templates:    templates,
		cookieSecure: cookieSecure,
		loginLimiter: newAttemptLimiter(adminLoginAttemptLimit, adminLoginAttemptWindow),
	}
	handler.presenters = presenterSet{
		json: jsonPresenter{},
		html: htmlPresenter{handler: handler},
	}
	return handler, nil
}
