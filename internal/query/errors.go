package query

import "errors"

var errNilPage = errors.New("query: fetch returned no page")
