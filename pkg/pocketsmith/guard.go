package pocketsmith

import (
	"os"
	"strings"
)

// AllowWritesEnv is the environment variable gating mutating operations.
// Only a case-insensitive "true" enables writes; any other value (including
// unset) keeps them disabled.
const AllowWritesEnv = "POCKETSMITH_ALLOW_WRITES"

// WritesEnabled reports whether mutating operations are currently allowed.
// The switch is re-read from the environment on every call, so a change
// takes effect on the next operation without a restart.
func WritesEnabled() bool {
	return strings.EqualFold(os.Getenv(AllowWritesEnv), "true")
}

// requireWrites is called at the top of every mutating operation, before any
// request is built or sent.
func requireWrites() error {
	if !WritesEnabled() {
		return &WritesDisabledError{}
	}
	return nil
}
