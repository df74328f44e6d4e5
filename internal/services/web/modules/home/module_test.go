package home

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
	"github.com/mashirovoc/blog/internal/services/web/platform/theme"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

func TestModuleIDReturnsHome(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "home" {
		t.Fatalf("ID() = %q, want %q", got, "home")
	}
}

func TestMountServesLandingPage(t *testing.T) {
	t.Parallel()

	m := NewWithGateway(sampleGateway(), module.ViewerConfig{}, publichandler.NewBase())
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Root, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{"はじめての投稿", "2024年05月01日", `href="/articles/first-post"`, `href="/categories/tech"`, `href="/articles/all"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %q", marker, body)
		}
	}
	if strings.Contains(body, "data-viewer") {
		t.Fatalf("viewer rendered while disabled: %q", body)
	}
}

func TestMountRendersViewerWhenEnabled(t *testing.T) {
	t.Parallel()

	viewer := module.ViewerConfig{Enabled: true, LoadingImage: "/mmd/loading.gif"}
	mount, _ := NewWithGateway(sampleGateway(), viewer, publichandler.NewBase()).Mount()
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Root, nil))
	body := rr.Body.String()
	if !strings.Contains(body, `data-manifest="/viewer/manifest.json"`) {
		t.Fatalf("body missing viewer manifest: %q", body)
	}
	if !strings.Contains(body, `src="/static/viewer.js"`) {
		t.Fatalf("body missing viewer script: %q", body)
	}
	if !strings.Contains(body, `src="/mmd/loading.gif"`) {
		t.Fatalf("body missing loading image: %q", body)
	}
}

func TestMountLandingListFailureRendersServerError(t *testing.T) {
	t.Parallel()

	gateway := sampleGateway()
	gateway.tagsErr = errors.New("cms down")
	mount, _ := NewWithGateway(gateway, module.ViewerConfig{}, publichandler.NewBase()).Mount()
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Root, nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "cms down") {
		t.Fatalf("body leaked internal error text: %q", rr.Body.String())
	}
}

func TestMountDegradedModeIsUnavailable(t *testing.T) {
	t.Parallel()

	mount, _ := New().Mount()
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Root, nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestThemeStoresCookieAndRedirectsBack(t *testing.T) {
	t.Parallel()

	mount, _ := New().Mount()
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/theme?mode=dark&return=%2Farticles%2Fall", nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/articles/all" {
		t.Fatalf("Location = %q, want %q", got, "/articles/all")
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != theme.CookieName || cookies[0].Value != theme.Dark {
		t.Fatalf("cookies = %+v, want %s=%s", cookies, theme.CookieName, theme.Dark)
	}
}

func TestThemeRejectsExternalReturnTarget(t *testing.T) {
	t.Parallel()

	mount, _ := New().Mount()
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/theme?mode=light&return=%2F%2Fevil.example", nil))
	if got := rr.Header().Get("Location"); got != routepath.Root {
		t.Fatalf("Location = %q, want %q", got, routepath.Root)
	}
}

func TestThemeRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	mount, _ := New().Mount()
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/theme?mode=sepia", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
