package usecase

// PageRequest is the caller's requested page; zero values fall back to the configured defaults.
type PageRequest struct {
	Page  int
	Limit int
}

// Pagination describes the page returned by a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}
