// Package resource implements the generic CRUD engine behind services, FAQs
// and reviews.
//
// A Kind describes fields, bounds and access policy. Controller runs the
// validate, authorize and persist pipeline for any Kind and returns an Outcome
// that the web layer turns into a redirect or a rendered page.
package resource
