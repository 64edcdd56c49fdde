// Package main is the operator CLI for the marketing site.
package main

import "github.com/tsolutions/site/internal/cmd/sitectl"

func main() {
	sitectl.Execute()
}
