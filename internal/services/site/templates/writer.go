package templates

import (
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so component bodies can emit
// markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes s escaped for element content and attribute values.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) element(tag, class, content string) {
	h.raw("<" + tag)
	if class != "" {
		h.raw(` class="`)
		h.text(class)
		h.raw(`"`)
	}
	h.raw(">")
	h.text(content)
	h.raw("</" + tag + ">")
}

func (h *htmlWriter) link(href, class, content string) {
	h.raw(`<a href="`)
	h.text(href)
	h.raw(`"`)
	if class != "" {
		h.raw(` class="`)
		h.text(class)
		h.raw(`"`)
	}
	h.raw(">")
	h.text(content)
	h.raw("</a>")
}
