//go:build tools

// Code generators used by go:generate directives
package tools

import (
	_ "github.com/dmarkham/enumer"
)
