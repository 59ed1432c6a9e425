package domain

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type BatchProductResult struct {
	ProductID string   `json:"product_id"`
	Outfits   []Outfit `json:"outfits,omitempty"`
	Status    string   `json:"status"`
	Error     string   `json:"error,omitempty"`
	Message   string   `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	Page          int                  `json:"page"`
	Limit         int                  `json:"limit"`
	TotalProducts int                  `json:"total_products"`
	Results       []BatchProductResult `json:"results"`
	Summary       BatchSummary         `json:"summary"`
	Metadata      BatchMeta            `json:"metadata"`
}
