package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/tsolutions/site/internal/services/site/resource"
	"github.com/tsolutions/site/internal/services/site/session"
)

// Resource renders the body for a controller view.
func Resource(page Page, view resource.View) templ.Component {
	switch view.Template {
	case resource.TemplateList:
		return List(page, view)
	case resource.TemplateCreate, resource.TemplateUpdate:
		return Form(page, view)
	case resource.TemplateDetail:
		return Detail(page, view)
	default:
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("unknown template %q", view.Template)
		})
	}
}

func viewer(page Page) session.Session {
	return session.Session{LoggedIn: page.LoggedIn}
}

// List renders every record of a kind.
func List(page Page, view resource.View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		kind := view.Kind
		h.element("h1", "", page.t(kind.Title))
		if kind.Policy.Allows(resource.OpCreate, viewer(page)) {
			h.link(kind.CreatePath(), "button", page.t("list.create"))
		}
		switch {
		case view.DBError:
			h.element("p", "error db-error", page.t("list.db_error"))
		case len(view.Records) == 0:
			h.element("p", "empty", page.t("list.empty"))
		default:
			linkDetail := kind.Policy.Allows(resource.OpGet, viewer(page))
			h.raw(`<ul class="records records-`)
			h.text(kind.Plural)
			h.raw(`">`)
			for _, record := range view.Records {
				h.raw(`<li>`)
				for i, field := range kind.Fields {
					value := displayValue(page, field, record.Values.Get(field.Name))
					if i == 0 {
						if linkDetail {
							h.raw(`<h2>`)
							h.link(kind.DetailPath(record.ID), "", value)
							h.raw(`</h2>`)
						} else {
							h.element("h2", "", value)
						}
						continue
					}
					h.element("p", field.Name, value)
				}
				h.raw(`</li>`)
			}
			h.raw(`</ul>`)
		}
		return h.err
	})
}

// Detail renders one record, or the not-found and store-error states.
func Detail(page Page, view resource.View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		kind := view.Kind
		h.element("h1", "", page.t(kind.Title))
		switch {
		case view.NotFound:
			h.element("p", "error not-found", page.t("detail.not_found"))
		case view.DBError || view.Record == nil:
			h.element("p", "error db-error", page.t("detail.db_error"))
		default:
			record := view.Record
			h.raw(`<dl class="record">`)
			for _, field := range kind.Fields {
				h.element("dt", "", page.t(field.Label))
				h.element("dd", field.Name, displayValue(page, field, record.Values.Get(field.Name)))
			}
			h.raw(`</dl>`)
			if kind.Policy.Allows(resource.OpUpdate, viewer(page)) {
				h.link(kind.UpdatePath(record.ID), "button", page.t("detail.edit"))
			}
			if kind.Policy.Allows(resource.OpDelete, viewer(page)) {
				h.raw(`<form method="post" class="inline" action="`)
				h.text(kind.DeletePath(record.ID))
				h.raw(`"><button type="submit" class="danger">`)
				h.text(page.t("detail.delete"))
				h.raw(`</button></form>`)
			}
		}
		h.link(kind.ListPath(), "back", page.t("detail.back"))
		return h.err
	})
}

// Form renders the create or update form with problems and echoed input.
func Form(page Page, view resource.View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		kind := view.Kind
		action, heading, submit := kind.CreatePath(), "form.create_heading", "form.create_submit"
		if view.Template == resource.TemplateUpdate {
			action, heading, submit = kind.UpdatePath(view.ID), "form.update_heading", "form.update_submit"
		}

		h.element("h1", "", page.t(heading, page.t(kind.Title)))
		if view.NotFound || view.DBError {
			if view.NotFound {
				h.element("p", "error not-found", page.t("detail.not_found"))
			} else {
				h.element("p", "error db-error", page.t("detail.db_error"))
			}
			h.link(kind.ListPath(), "back", page.t("detail.back"))
			return h.err
		}
		if len(view.Problems) > 0 {
			h.raw(`<ul class="errors">`)
			for _, message := range resource.Messages(view.Problems, page.printer()) {
				h.element("li", "", message)
			}
			h.raw(`</ul>`)
		}

		h.raw(`<form method="post" action="`)
		h.text(action)
		h.raw(`">`)
		for _, field := range kind.Fields {
			id := kind.Name + "-" + field.Name
			value := view.Input.Get(field.Name)
			h.raw(`<label for="`)
			h.text(id)
			h.raw(`">`)
			h.text(page.t(field.Label))
			h.raw(`</label>`)
			if field.Multiline {
				h.raw(`<textarea id="`)
				h.text(id)
				h.raw(`" name="`)
				h.text(field.Name)
				h.raw(`">`)
				h.text(value)
				h.raw(`</textarea>`)
				continue
			}
			h.raw(`<input id="`)
			h.text(id)
			h.raw(`" name="`)
			h.text(field.Name)
			if field.Type == resource.FieldInteger {
				h.raw(`" inputmode="numeric`)
			}
			h.raw(`" value="`)
			h.text(value)
			h.raw(`">`)
		}
		h.raw(`<button type="submit">`)
		h.text(page.t(submit))
		h.raw(`</button></form>`)
		return h.err
	})
}

func displayValue(page Page, field resource.Field, value string) string {
	if field.Type == resource.FieldInteger && value != "" {
		return page.t("review.grade", value)
	}
	return value
}
