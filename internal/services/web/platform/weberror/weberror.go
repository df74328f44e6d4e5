// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/mashirovoc/blog/internal/services/web/platform/errors"
	webi18n "github.com/mashirovoc/blog/internal/services/web/platform/i18n"
	"github.com/mashirovoc/blog/internal/services/web/platform/pagerender"
	webtemplates "github.com/mashirovoc/blog/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	return apperrors.PublicMessage(err)
}

// WriteAppError renders the error page for statusCode inside page's shell.
// Statuses without an error page render as 500.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, page webtemplates.Page) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	page.Title = webtemplates.ErrorPageTitle(statusCode, page.Copy)
	pagerender.WritePage(w, r, page, statusCode, webtemplates.ErrorState(statusCode, page.Copy))
}

// WriteError renders err as an error page when it maps to 404 or 5xx and as
// plain text otherwise.
func WriteError(w http.ResponseWriter, r *http.Request, err error, page webtemplates.Page) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, page)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
