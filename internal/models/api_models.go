package models

// FragmentEnvelope is the host's AJAX response wrapping an HTML fragment.
type FragmentEnvelope struct {
	HTML string `json:"html"`
}

// MapperResponse is the success envelope returned by the mapper endpoint.
type MapperResponse struct {
	Success   bool           `json:"success"`
	EpisodeID string         `json:"episodeId"`
	Servers   int            `json:"servers"`
	Sources   []ServerSource `json:"sources"`
}

// ErrorResponse is the failure envelope returned by the mapper endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse is the root health-check payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
