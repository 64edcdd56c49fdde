package site

import (
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/tsolutions/site/internal/platform/errors"
	"github.com/tsolutions/site/internal/services/site/auth"
	"github.com/tsolutions/site/internal/services/site/platform/flash"
	"github.com/tsolutions/site/internal/services/site/platform/httpx"
	"github.com/tsolutions/site/internal/services/site/session"
	"github.com/tsolutions/site/internal/services/site/templates"
)

// maxFormBytes bounds every form body the site accepts.
const maxFormBytes = 64 << 10

func (a *app) handleHome(w http.ResponseWriter, r *http.Request) {
	page := a.page(w, r, "")
	a.writePage(w, r, http.StatusOK, page, templates.Home(page))
}

func (a *app) handleAbout(w http.ResponseWriter, r *http.Request) {
	page := a.page(w, r, "nav.about")
	a.writePage(w, r, http.StatusOK, page, templates.About(page))
}

func (a *app) handleContact(w http.ResponseWriter, r *http.Request) {
	page := a.page(w, r, "nav.contact")
	a.writePage(w, r, http.StatusOK, page, templates.Contact(page, a.contact))
}

func (a *app) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	page := a.page(w, r, "login.heading")
	a.writePage(w, r, http.StatusOK, page, templates.Login(page, false, ""))
}

// handleLogin checks the admin credentials. A rejected attempt re-renders the
// form and leaves the current session untouched.
func (a *app) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !a.parseForm(w, r) {
		return
	}
	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")
	if err := a.verifier.Verify(username, password); err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			a.log(r).WithError(err).Error("verify credentials")
		} else {
			a.log(r).Info("admin login rejected")
		}
		page := a.page(w, r, "login.heading")
		a.writePage(w, r, http.StatusOK, page, templates.Login(page, true, username))
		return
	}
	if err := a.sessions.Save(w, r, session.Admin); err != nil {
		a.writeFailure(w, r, err, "save session")
		return
	}
	a.log(r).Info("admin logged in")
	flash.Write(w, r, flash.Success("notice.signed_in"), a.policy)
	httpx.WriteRedirect(w, r, "/")
}

func (a *app) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Clear(w, r); err != nil {
		a.writeFailure(w, r, err, "clear session")
		return
	}
	flash.Write(w, r, flash.Info("notice.signed_out"), a.policy)
	httpx.WriteRedirect(w, r, "/")
}

func (a *app) handleHealth(w http.ResponseWriter, r *http.Request) {
	if a.ping != nil {
		if err := a.ping(r.Context()); err != nil {
			a.log(r).WithError(err).Warn("health check failed")
			_ = httpx.WriteText(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
	}
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (a *app) handleNotFound(w http.ResponseWriter, r *http.Request) {
	a.writeError(w, r, http.StatusNotFound, "error.not_found")
}

func (a *app) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	a.writeError(w, r, http.StatusMethodNotAllowed, "error.method_not_allowed")
}

// parseForm reads a bounded urlencoded body into r.PostForm.
func (a *app) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		a.writeFailure(w, r, apperrors.Wrap(apperrors.CodeInvalidInput, "form body", err), "parse form")
		return false
	}
	return true
}
