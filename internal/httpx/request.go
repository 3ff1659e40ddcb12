package httpx

import (
	"net/http"
	"strconv"
	"strings"
)

// MaxPageSize bounds the pageSize query parameter.
const MaxPageSize = 200

// PathParam extracts the trailing path segment after prefix, empty when the
// path does not match or the segment contains further slashes.
func PathParam(r *http.Request, prefix string) string {
	if !strings.HasPrefix(r.URL.Path, prefix) {
		return ""
	}
	param := strings.TrimPrefix(r.URL.Path, prefix)
	if strings.Contains(param, "/") {
		return ""
	}
	return strings.TrimSpace(param)
}

// ParsePagination reads the 1-indexed page and pageSize query parameters,
// defaulting to page 1 and 20 rows. Out-of-bounds values are reported, not
// clamped.
func ParsePagination(r *http.Request) (page, pageSize int, errs []string) {
	page = 1
	pageSize = 20

	if raw := r.URL.Query().Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			errs = append(errs, "page must be a positive integer")
		} else {
			page = v
		}
	}

	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > MaxPageSize {
			errs = append(errs, "pageSize must be between 1 and 200")
		} else {
			pageSize = v
		}
	}

	return page, pageSize, errs
}
