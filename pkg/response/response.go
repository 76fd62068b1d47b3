package response

type ErrorResponse struct {
	Error string `json:"error"`
	// Detail carries diagnostic context on 500s outside production.
	Detail string `json:"detail,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data any `json:"data"`
}

type TokenResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type PagedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination fills the derived totalPages field.
func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
