package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Home renders the landing page body.
func Home(page Page) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="hero">`)
		h.element("h1", "", page.t("home.heading"))
		h.element("p", "", page.t("home.body"))
		h.link("/services", "button", page.t("home.cta"))
		h.raw(`</section>`)
		return h.err
	})
}

// About renders the about page body.
func About(page Page) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.element("h1", "", page.t("about.heading"))
		h.element("p", "", page.t("about.body"))
		return h.err
	})
}

// ContactDetails are the business contact channels.
type ContactDetails struct {
	Email string
	Phone string
}

// Contact renders the contact page body.
func Contact(page Page, details ContactDetails) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.element("h1", "", page.t("contact.heading"))
		h.element("p", "", page.t("contact.body"))
		h.raw(`<dl>`)
		if details.Email != "" {
			h.element("dt", "", page.t("contact.email"))
			h.raw(`<dd>`)
			h.link("mailto:"+details.Email, "", details.Email)
			h.raw(`</dd>`)
		}
		if details.Phone != "" {
			h.element("dt", "", page.t("contact.phone"))
			h.element("dd", "", details.Phone)
		}
		h.raw(`</dl>`)
		return h.err
	})
}

// Login renders the admin login form. failed shows the rejection message and
// username is echoed back.
func Login(page Page, failed bool, username string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.element("h1", "", page.t("login.heading"))
		if failed {
			h.raw(`<ul class="errors">`)
			h.element("li", "login-failed", page.t("login.failed"))
			h.raw(`</ul>`)
		}
		h.raw(`<form method="post" action="/login"><label for="username">`)
		h.text(page.t("login.username"))
		h.raw(`</label><input id="username" name="username" autocomplete="username" value="`)
		h.text(username)
		h.raw(`"><label for="password">`)
		h.text(page.t("login.password"))
		h.raw(`</label><input id="password" name="password" type="password" autocomplete="current-password"><button type="submit">`)
		h.text(page.t("login.submit"))
		h.raw(`</button></form>`)
		return h.err
	})
}

// Error renders a status page body with a catalog message.
func Error(page Page, key string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.element("h1", "", page.t(key))
		h.link("/", "", page.t("nav.home"))
		return h.err
	})
}
