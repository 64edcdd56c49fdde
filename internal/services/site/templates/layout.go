package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Notice is a flash message resolved for display.
type Notice struct {
	Kind    string
	Message string
}

// Page carries per-request layout state.
type Page struct {
	// Title is a catalog key; empty renders the site name only.
	Title    string
	Lang     string
	Path     string
	LoggedIn bool
	Notice   *Notice
	Printer  *message.Printer
}

func (p Page) printer() *message.Printer {
	if p.Printer == nil {
		return message.NewPrinter(language.English)
	}
	return p.Printer
}

func (p Page) t(key string, args ...any) string {
	return p.printer().Sprintf(key, args...)
}

type navItem struct {
	href string
	key  string
}

var navItems = []navItem{
	{"/", "nav.home"},
	{"/services", "nav.services"},
	{"/faqs", "nav.faqs"},
	{"/reviews", "nav.reviews"},
	{"/about", "nav.about"},
	{"/contact", "nav.contact"},
}

// Layout wraps the child component in the site shell.
func Layout(page Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		lang := page.Lang
		if lang == "" {
			lang = "en"
		}
		title := page.t("site.name")
		if page.Title != "" {
			title = page.t("title.page", page.t(page.Title))
		}

		h.raw(`<!DOCTYPE html><html lang="`)
		h.text(lang)
		h.raw(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title><link rel="stylesheet" href="/public/style.css"></head><body><header class="site-header"><nav>`)
		for _, item := range navItems {
			class := ""
			if item.href == page.Path {
				class = "active"
			}
			h.link(item.href, class, page.t(item.key))
		}
		if page.LoggedIn {
			h.raw(`<form method="post" action="/logout" class="inline"><button type="submit">`)
			h.text(page.t("nav.logout"))
			h.raw(`</button></form>`)
		} else {
			h.link("/login", "", page.t("nav.login"))
		}
		h.raw(`<span class="lang">`)
		h.link("?lang=en", "", "EN")
		h.link("?lang=sv", "", "SV")
		h.raw(`</span></nav></header>`)

		if page.Notice != nil {
			h.raw(`<div class="notice notice-`)
			h.text(page.Notice.Kind)
			h.raw(`" role="status">`)
			h.text(page.Notice.Message)
			h.raw(`</div>`)
		}

		h.raw(`<main>`)
		if h.err != nil {
			return h.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main><footer>`)
		h.text(page.t("footer.copy"))
		h.raw(`</footer></body></html>`)
		return h.err
	})
}
