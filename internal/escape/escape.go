// Package escape makes untrusted text safe to interpolate into HTML.
//
// Escaping is not idempotent: escaping already escaped text escapes it
// again. Escape exactly once, at the point of interpolation.
package escape

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Ampersand must come first so entities produced by later pairs are not
// escaped a second time.
var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// String escapes & < > " and ' in s.
func String(s string) string {
	if s == "" {
		return ""
	}
	return replacer.Replace(s)
}

// Value escapes the text form of v. Nil and falsy values (false, zero
// numbers, empty strings, nil pointers) yield the empty string.
func Value(v any) string {
	if v == nil {
		return ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return ""
		}
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.String:
		if rv.IsZero() {
			return ""
		}
	}

	switch x := v.(type) {
	case string:
		return String(x)
	case error:
		return String(x.Error())
	case fmt.Stringer:
		return String(x.String())
	}
	return String(fmt.Sprint(v))
}

// URL validates raw as an absolute http(s) URL and returns it escaped for
// use inside a double-quoted attribute. Any other input is rejected.
func URL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host == "" {
		return "", false
	}
	return String(u.String()), true
}

// componentUnreserved restores the marks a URI component encoder leaves
// alone but url.QueryEscape encodes.
var componentUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Component percent-encodes s for use as a single URL path segment or
// query value, byte for byte like encodeURIComponent: spaces become %20
// and ! ' ( ) * ~ stay as they are.
func Component(s string) string {
	return componentUnreserved.Replace(url.QueryEscape(s))
}
