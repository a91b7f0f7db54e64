package response

type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Window echoes the date range a report was computed for.
type Window struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ReportPayload[T any] struct {
	Window Window `json:"window"`
	Table  T      `json:"table"`
}
