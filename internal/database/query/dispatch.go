// Geoquest - Location-Based Game Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoquest

package query

import (
	"fmt"
	"net/url"
)

// Selector keys name the parameter that carries a value for the builder.
const (
	// SelectorTo carries the value of an UPDATE SET.
	SelectorTo = "to"
	// SelectorIs carries the value of a WHERE comparison.
	SelectorIs = "is"
)

// Params is a decoded query string. Keys are unique; when a key repeats the
// last occurrence wins.
type Params map[string]string

// ParamsFromValues flattens url.Values keeping the last value of each key.
func ParamsFromValues(values url.Values) Params {
	p := make(Params, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			p[k] = vs[len(vs)-1]
		}
	}
	return p
}

// Lookup returns the value for key and whether it was present.
func (p Params) Lookup(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Require returns the value for key or ErrMissingParameter.
func (p Params) Require(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	return v, nil
}

// Bind resolves the semantic type of column and converts the parameter named
// by selector into a value of that type, ready for Is or To.
func Bind(params Params, column, selector string) (Value, error) {
	t, err := ColumnType(column)
	if err != nil {
		return nil, err
	}
	raw, err := params.Require(selector)
	if err != nil {
		return nil, err
	}
	return parseAs(t, column, raw)
}
