package resource

import (
	"strconv"
	"strings"

	"github.com/tsolutions/site/internal/services/site/storage"
)

// Values and Record are shared with the storage contract.
type (
	Values = storage.Values
	Record = storage.Record
)

// FieldType selects the validation rule applied to a field.
type FieldType int

const (
	// FieldText is bounded by length in code points.
	FieldText FieldType = iota
	// FieldInteger must parse as an integer and is bounded by value.
	FieldInteger
)

// Field declares one editable column of a resource kind.
type Field struct {
	Name  string
	Label string
	Type  FieldType
	Min   int
	Max   int
	// Multiline renders as a textarea.
	Multiline bool
}

// Kind describes one resource family.
type Kind struct {
	// Name is the singular path segment, e.g. "service".
	Name string
	// Plural is the list path segment, e.g. "services".
	Plural string
	// Table is the backing SQL table.
	Table string
	// Title is the catalog key used for page headings.
	Title  string
	Fields []Field
	Policy Policy
}

// ListPath is where successful mutations redirect.
func (k *Kind) ListPath() string {
	return "/" + k.Plural
}

// DetailPath is the canonical detail URL for id.
func (k *Kind) DetailPath(id int64) string {
	return k.ListPath() + "/" + strconv.FormatInt(id, 10)
}

// CreatePath is the canonical create form URL.
func (k *Kind) CreatePath() string {
	return k.ListPath() + "/create"
}

// UpdatePath is the canonical update form URL for id.
func (k *Kind) UpdatePath(id int64) string {
	return k.ListPath() + "/update/" + strconv.FormatInt(id, 10)
}

// DeletePath is the canonical delete URL for id.
func (k *Kind) DeletePath(id int64) string {
	return k.ListPath() + "/delete/" + strconv.FormatInt(id, 10)
}

// Field returns the declared field named name.
func (k *Kind) Field(name string) (Field, bool) {
	for _, field := range k.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Columns lists field names in declaration order.
func (k *Kind) Columns() []string {
	columns := make([]string, 0, len(k.Fields))
	for _, field := range k.Fields {
		columns = append(columns, field.Name)
	}
	return columns
}

// Input keeps only declared fields from submitted values. Missing fields read
// as empty strings so validation sees every field.
func (k *Kind) Input(submitted Values) Values {
	input := make(Values, len(k.Fields))
	for _, field := range k.Fields {
		input[field.Name] = submitted.Get(field.Name)
	}
	return input
}

// Canonical rewrites integer fields to their parsed form. Only call it on
// input that passed Validate.
func (k *Kind) Canonical(input Values) Values {
	out := input.Clone()
	for _, field := range k.Fields {
		if field.Type != FieldInteger {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(out[field.Name])); err == nil {
			out[field.Name] = strconv.Itoa(n)
		}
	}
	return out
}

// Service is a service offered by the business.
var Service = &Kind{
	Name:   "service",
	Plural: "services",
	Table:  "services",
	Title:  "Services",
	Fields: []Field{
		{Name: "name", Label: "Name", Type: FieldText, Min: 5, Max: 50},
		{Name: "description", Label: "Description", Type: FieldText, Min: 10, Max: 300, Multiline: true},
	},
	Policy: Policy{
		OpList:   Public,
		OpGet:    RequiresAuth,
		OpCreate: RequiresAuth,
		OpUpdate: RequiresAuth,
		OpDelete: RequiresAuth,
	},
}

// FAQ is a frequently asked question with its answer.
var FAQ = &Kind{
	Name:   "faq",
	Plural: "faqs",
	Table:  "faq",
	Title:  "FAQ",
	Fields: []Field{
		{Name: "question", Label: "Question", Type: FieldText, Min: 5, Max: 300},
		{Name: "answer", Label: "Answer", Type: FieldText, Min: 2, Max: 300, Multiline: true},
	},
	Policy: Policy{
		OpList:   Public,
		OpGet:    RequiresAuth,
		OpCreate: RequiresAuth,
		OpUpdate: RequiresAuth,
		OpDelete: RequiresAuth,
	},
}

// Review is customer feedback with a 0-10 grade. Anyone may post one.
var Review = &Kind{
	Name:   "review",
	Plural: "reviews",
	Table:  "reviews",
	Title:  "Reviews",
	Fields: []Field{
		{Name: "name", Label: "Name", Type: FieldText, Min: 2, Max: 50},
		{Name: "description", Label: "Description", Type: FieldText, Min: 0, Max: 500, Multiline: true},
		{Name: "grade", Label: "Grade", Type: FieldInteger, Min: 0, Max: 10},
	},
	Policy: Policy{
		OpList:   Public,
		OpGet:    Public,
		OpCreate: Public,
		OpUpdate: RequiresAuth,
		OpDelete: RequiresAuth,
	},
}

// Kinds returns every resource kind served by the site.
func Kinds() []*Kind {
	return []*Kind{Service, FAQ, Review}
}

// KindByName looks up a kind by singular or plural name.
func KindByName(name string) (*Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, kind := range Kinds() {
		if kind.Name == name || kind.Plural == name {
			return kind, true
		}
	}
	return nil, false
}
