package resource

import (
	"context"
	"errors"

	"github.com/tsolutions/site/internal/services/site/session"
	"github.com/tsolutions/site/internal/services/site/storage"
)

// Controller runs the request pipeline for one resource kind.
//
// Every call takes the caller session explicitly; the controller holds no
// per-request state and is safe for concurrent use.
type Controller struct {
	Kind  *Kind
	Store storage.Store
}

// NewController binds kind to its store.
func NewController(kind *Kind, store storage.Store) *Controller {
	return &Controller{Kind: kind, Store: store}
}

// List renders every record. It never redirects for public kinds.
func (c *Controller) List(ctx context.Context, s session.Session) Outcome {
	if !c.Kind.Policy.Allows(OpList, s) {
		return redirect(LoginPath, "")
	}
	records, err := c.Store.List(ctx)
	if err != nil {
		return Outcome{View: View{Template: TemplateList, Kind: c.Kind, DBError: true}, Err: err}
	}
	return Outcome{View: View{Template: TemplateList, Kind: c.Kind, Records: records}}
}

// Get renders one record.
func (c *Controller) Get(ctx context.Context, s session.Session, id int64) Outcome {
	if !c.Kind.Policy.Allows(OpGet, s) {
		return redirect(LoginPath, "")
	}
	return c.load(ctx, id, TemplateDetail)
}

// CreateForm renders an empty create form.
func (c *Controller) CreateForm(_ context.Context, s session.Session) Outcome {
	if !c.Kind.Policy.Allows(OpCreate, s) {
		return redirect(LoginPath, "")
	}
	return Outcome{View: View{Template: TemplateCreate, Kind: c.Kind, Input: c.Kind.Input(nil)}}
}

// Create validates and persists a new record.
func (c *Controller) Create(ctx context.Context, s session.Session, submitted Values) Outcome {
	input := c.Kind.Input(submitted)
	problems := c.check(OpCreate, s, input)
	if len(problems) > 0 {
		return c.form(TemplateCreate, 0, input, problems, nil)
	}
	if _, err := c.Store.Create(ctx, c.Kind.Canonical(input)); err != nil {
		return c.form(TemplateCreate, 0, input, []Problem{InternalProblem()}, err)
	}
	return redirect(c.Kind.ListPath(), NoticeCreated)
}

// EditForm renders the update form prefilled with the stored record. A failed
// lookup still renders the update page, flagged NotFound or DBError.
func (c *Controller) EditForm(ctx context.Context, s session.Session, id int64) Outcome {
	if !c.Kind.Policy.Allows(OpUpdate, s) {
		return redirect(LoginPath, "")
	}
	out := c.load(ctx, id, TemplateUpdate)
	if out.View.Record == nil {
		return out
	}
	out.View.Input = c.Kind.Input(out.View.Record.Values)
	return out
}

// Update validates and replaces every non-id field of record id.
func (c *Controller) Update(ctx context.Context, s session.Session, id int64, submitted Values) Outcome {
	input := c.Kind.Input(submitted)
	problems := c.check(OpUpdate, s, input)
	if len(problems) > 0 {
		return c.form(TemplateUpdate, id, input, problems, nil)
	}
	if err := c.Store.Update(ctx, id, c.Kind.Canonical(input)); err != nil {
		return c.form(TemplateUpdate, id, input, []Problem{InternalProblem()}, err)
	}
	return redirect(c.Kind.ListPath(), NoticeUpdated)
}

// Delete removes record id. Deleting a missing id succeeds.
func (c *Controller) Delete(ctx context.Context, s session.Session, id int64) Outcome {
	if !c.Kind.Policy.Allows(OpDelete, s) {
		return redirect(LoginPath, "")
	}
	if err := c.Store.Delete(ctx, id); err != nil {
		return Outcome{View: View{Template: TemplateDetail, Kind: c.Kind, ID: id, DBError: true}, Err: err}
	}
	return redirect(c.Kind.ListPath(), NoticeDeleted)
}

// check validates input and appends an authorization problem when op needs
// a session the caller lacks. Both kinds of problem are reported together.
func (c *Controller) check(op Operation, s session.Session, input Values) []Problem {
	problems := Validate(c.Kind, input)
	if !c.Kind.Policy.Allows(op, s) {
		problems = append(problems, UnauthorizedProblem())
	}
	return problems
}

func (c *Controller) form(tmpl Template, id int64, input Values, problems []Problem, err error) Outcome {
	return Outcome{
		View: View{Template: tmpl, Kind: c.Kind, ID: id, Input: input, Problems: problems},
		Err:  err,
	}
}

func (c *Controller) load(ctx context.Context, id int64, tmpl Template) Outcome {
	view := View{Template: tmpl, Kind: c.Kind, ID: id}
	record, err := c.Store.Get(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		view.NotFound = true
		return Outcome{View: view}
	case err != nil:
		view.DBError = true
		return Outcome{View: view, Err: err}
	}
	view.Record = &record
	return Outcome{View: view}
}
