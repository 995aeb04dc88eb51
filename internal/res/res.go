// Package res contains resources embedded within ember that are used
// elsewhere.
package res

import (
	_ "embed"
)

// DefaultConfig contains the example configuration.
//
//go:embed default.toml
var DefaultConfig []byte
