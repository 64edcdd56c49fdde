// Package storage defines persistence contracts for site content.
//
// Each resource kind gets its own Store instance so the controller can stay
// generic over services, FAQs and reviews without knowing table layouts.
package storage
