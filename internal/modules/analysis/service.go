package analysis

import (
	"context"
	"errors"
	"strings"

	"github.com/pentaview/core/internal/models"
	"github.com/pentaview/core/internal/pkg/pagination"
	"github.com/pentaview/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrEmptyQuestion = errors.New("question must not be empty")

type Service struct {
	db   *gorm.DB
	orch *Orchestrator
	log  *zap.Logger
}

func NewService(db *gorm.DB, orch *Orchestrator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{db: db, orch: orch, log: log}
}

// Start creates the session record plus its five perspective children and
// kicks the run off in the background. The returned session reflects the
// persisted initial state; callers poll Get for progress.
func (s *Service) Start(userID, question string) (*models.AnalysisSessionModel, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	session := &models.AnalysisSessionModel{
		UserID:   userID,
		Question: question,
		Status:   models.AnalysisRunning,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		for _, kind := range Kinds() {
			child := models.PerspectiveResultModel{
				SessionID: session.ID,
				Kind:      string(kind),
				Status:    models.PerspectiveRunning,
			}
			if err := tx.Create(&child).Error; err != nil {
				return err
			}
			session.PerspectiveResults = append(session.PerspectiveResults, child)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.runDetached(session.ID, question)
	return session, nil
}

// runDetached drives one session to a terminal state. It deliberately does
// not inherit the request context: the run must outlive the HTTP request
// that started it.
func (s *Service) runDetached(sessionID, question string) {
	ctx := context.Background()

	_, synthesis, err := s.orch.Run(ctx, question, func(kind Kind, content string) {
		if err := s.completePerspective(sessionID, kind, content); err != nil {
			s.log.Error("persist perspective result",
				zap.String("session_id", sessionID),
				zap.String("kind", string(kind)),
				zap.Error(err))
		}
	})
	if err != nil {
		s.log.Error("analysis run failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		s.markStatus(sessionID, models.AnalysisError)
		return
	}

	if err := s.db.Create(&models.SynthesisResultModel{
		SessionID: sessionID,
		Content:   synthesis,
	}).Error; err != nil {
		s.log.Error("persist synthesis result",
			zap.String("session_id", sessionID),
			zap.Error(err))
		s.markStatus(sessionID, models.AnalysisError)
		return
	}

	s.markStatus(sessionID, models.AnalysisCompleted)
}

// completePerspective stores one finished perspective result. It runs from
// the orchestrator's completion callback, so results become visible to
// pollers while sibling tasks are still in flight.
func (s *Service) completePerspective(sessionID string, kind Kind, content string) error {
	return s.db.Model(&models.PerspectiveResultModel{}).
		Where("session_id = ? AND kind = ?", sessionID, string(kind)).
		Updates(map[string]interface{}{
			"content": content,
			"status":  models.PerspectiveCompleted,
		}).Error
}

// markStatus moves the session to a new status. Terminal states win: once a
// session is completed or errored it never transitions again.
func (s *Service) markStatus(sessionID string, status models.AnalysisStatus) {
	err := s.db.Model(&models.AnalysisSessionModel{}).
		Where("id = ? AND status NOT IN ?", sessionID,
			[]models.AnalysisStatus{models.AnalysisCompleted, models.AnalysisError}).
		Update("status", status).Error
	if err != nil {
		s.log.Error("update session status",
			zap.String("session_id", sessionID),
			zap.String("status", string(status)),
			zap.Error(err))
	}
}

// Get loads one session with its perspective results and synthesis, scoped
// to the owning user. Returns (nil, nil) when no such session exists.
func (s *Service) Get(userID, id string) (*models.AnalysisSessionModel, error) {
	var session models.AnalysisSessionModel
	err := s.db.
		Preload("PerspectiveResults", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Synthesis").
		First(&session, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// List returns the user's sessions newest-first as summaries.
func (s *Service) List(userID string, q pagination.Query) ([]SessionSummary, response.Pagination, error) {
	tx := s.db.Model(&models.AnalysisSessionModel{}).
		Select("id, question, status, created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC")

	var summaries []SessionSummary
	pag, err := pagination.Paginate(tx, q, &summaries)
	return summaries, pag, err
}

// Delete removes a session and everything hanging off it. Idempotent: a
// missing session is not an error.
func (s *Service) Delete(userID, id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var session models.AnalysisSessionModel
		if err := tx.Select("id").First(&session, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("session_id = ?", session.ID).Delete(&models.PerspectiveResultModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", session.ID).Delete(&models.SynthesisResultModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.AnalysisSessionModel{}, "id = ?", session.ID).Error
	})
}
