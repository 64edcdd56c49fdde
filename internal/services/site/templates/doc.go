// Package templates renders site pages as templ components.
//
// Components are written against templ.ComponentFunc directly. Page bodies
// are passed to Layout as templ children.
package templates
