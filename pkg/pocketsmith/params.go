package pocketsmith

import (
	"net/url"
	"strconv"
)

// Pointer helpers for filter structs. A nil field is omitted from the query
// string entirely.

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }

func setString(params url.Values, key string, v *string) {
	if v != nil {
		params.Set(key, *v)
	}
}

func setInt(params url.Values, key string, v *int) {
	if v != nil {
		params.Set(key, strconv.Itoa(*v))
	}
}

// setBool serializes query-string booleans as "1"/"0", which is what the
// PocketSmith API expects for filter flags.
func setBool(params url.Values, key string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		params.Set(key, "1")
	} else {
		params.Set(key, "0")
	}
}
