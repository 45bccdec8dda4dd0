package models

// AnalysisStatus is the lifecycle state of an analysis session.
// Transitions are monotonic: pending → running → completed | error.
type AnalysisStatus string

const (
	AnalysisPending   AnalysisStatus = "pending"
	AnalysisRunning   AnalysisStatus = "running"
	AnalysisCompleted AnalysisStatus = "completed"
	AnalysisError     AnalysisStatus = "error"
)

// Terminal reports whether no further status transition is allowed.
func (s AnalysisStatus) Terminal() bool {
	return s == AnalysisCompleted || s == AnalysisError
}

// PerspectiveStatus is the lifecycle state of one perspective result.
type PerspectiveStatus string

const (
	PerspectivePending   PerspectiveStatus = "pending"
	PerspectiveRunning   PerspectiveStatus = "running"
	PerspectiveCompleted PerspectiveStatus = "completed"
)

// AnalysisSessionModel is one question submitted by one user, with its five
// perspective children and at most one synthesis.
type AnalysisSessionModel struct {
	Base
	UserID             string                   `json:"user_id"  gorm:"index;not null"`
	Question           string                   `json:"question" gorm:"type:text;not null"`
	Status             AnalysisStatus           `json:"status"   gorm:"type:varchar(16);not null;default:'pending'"`
	PerspectiveResults []PerspectiveResultModel `json:"perspective_results,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	Synthesis          *SynthesisResultModel    `json:"synthesis,omitempty"           gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

func (AnalysisSessionModel) TableName() string { return "analysis_sessions" }

// PerspectiveResultModel is one perspective analyzer's output for a session.
// Exactly one row exists per (session, kind) pair.
type PerspectiveResultModel struct {
	Base
	SessionID string            `json:"session_id" gorm:"index;not null;uniqueIndex:idx_session_kind"`
	Kind      string            `json:"kind"       gorm:"type:varchar(32);not null;uniqueIndex:idx_session_kind"`
	Content   string            `json:"content"    gorm:"type:longtext"`
	Status    PerspectiveStatus `json:"status"     gorm:"type:varchar(16);not null;default:'pending'"`
}

func (PerspectiveResultModel) TableName() string { return "perspective_results" }

// SynthesisResultModel is the combined recommendation, created only after all
// five perspectives completed. Immutable once created.
type SynthesisResultModel struct {
	Base
	SessionID string `json:"session_id" gorm:"uniqueIndex;not null"`
	Content   string `json:"content"    gorm:"type:longtext;not null"`
}

func (SynthesisResultModel) TableName() string { return "synthesis_results" }
