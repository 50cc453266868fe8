package entity

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	FormatAtom = "atom"
	FormatRSS  = "rss"
)

// NewPageParamFromRequest parses and validates the {page} path value.
// A request without one is page 1.
func NewPageParamFromRequest(r *http.Request) (int, error) {
	raw := r.PathValue("page")

	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)

	if err != nil {
		return 0, fmt.Errorf("page must be a valid integer")
	}

	if page < 1 {
		return 0, fmt.Errorf("page must be positive")
	}

	return page, nil
}
