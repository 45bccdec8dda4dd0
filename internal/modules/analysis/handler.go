package analysis

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/pentaview/core/internal/middleware"
	"github.com/pentaview/core/internal/pkg/pagination"
	"github.com/pentaview/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/perspectives", h.listPerspectives)

	g := rg.Group("/analyses", authMW)
	g.POST("", h.start)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) listPerspectives(c *gin.Context) {
	response.OK(c, Catalog())
}

func (h *Handler) start(c *gin.Context) {
	var dto StartAnalysisDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, err := h.svc.Start(middleware.CurrentUserID(c), dto.Question)
	if err != nil {
		if errors.Is(err, ErrEmptyQuestion) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, session)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	summaries, pag, err := h.svc.List(middleware.CurrentUserID(c), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, summaries, pag)
}

func (h *Handler) get(c *gin.Context) {
	session, err := h.svc.Get(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if session == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, session)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
