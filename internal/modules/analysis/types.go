package analysis

import "time"

type StartAnalysisDTO struct {
	Question string `json:"question" binding:"required"`
}

// SessionSummary is the list projection: enough to render an overview row
// without loading any result content.
type SessionSummary struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
