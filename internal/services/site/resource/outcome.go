package resource

// LoginPath is where page-level authorization failures redirect.
const LoginPath = "/login"

// Template names a page the web layer knows how to render.
type Template string

const (
	TemplateList   Template = "list"
	TemplateDetail Template = "detail"
	TemplateCreate Template = "create"
	TemplateUpdate Template = "update"
)

// Flash notice keys set after successful mutations.
const (
	NoticeCreated = "Saved. The entry was created."
	NoticeUpdated = "Saved. The entry was updated."
	NoticeDeleted = "The entry was deleted."
)

// View is the data a rendered page needs.
type View struct {
	Template Template
	Kind     *Kind
	Records  []Record
	// Record is nil when the lookup failed.
	Record   *Record
	Input    Values
	Problems []Problem
	DBError  bool
	NotFound bool
	ID       int64
}

// Outcome is the result of one controller operation: either a redirect or a
// view to render.
type Outcome struct {
	Redirect string
	View     View
	// Notice is a flash key to show after Redirect.
	Notice string
	// Err is the store failure behind DBError or an internal problem, kept
	// for logging.
	Err error
}

// IsRedirect reports whether the web layer should redirect.
func (o Outcome) IsRedirect() bool {
	return o.Redirect != ""
}

func redirect(location, notice string) Outcome {
	return Outcome{Redirect: location, Notice: notice}
}
