//go:build tools

// Package tools pins build tools used by go:generate directives.
package tools

import (
	_ "gioui.org/cmd/gogio"
)
