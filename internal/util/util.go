// Package util holds small helpers shared across layers.
package util

import "storefront/internal/domain/constants"

// NormalizePage clamps a 1-based page number and page size. A non-positive page becomes 1,
// a non-positive limit becomes defaultLimit and limits above maxLimit are capped.
func NormalizePage(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// TotalPages returns how many pages of size limit are needed for total rows.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}

	return int((total + int64(limit) - 1) / int64(limit))
}

// DefaultPageLimits fills unset listing limits with the built-in defaults.
func DefaultPageLimits(defaultLimit, maxLimit int) (int, int) {
	if defaultLimit < 1 {
		defaultLimit = constants.DefaultPageLimit
	}
	if maxLimit < 1 {
		maxLimit = constants.MaxPageLimit
	}

	return defaultLimit, maxLimit
}
