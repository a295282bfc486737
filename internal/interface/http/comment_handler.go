package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/community-blog-api/internal/application"
	repo "github.com/oksasatya/community-blog-api/internal/domain/repository"
	"github.com/oksasatya/community-blog-api/pkg/response"
	"github.com/oksasatya/community-blog-api/pkg/validation"
)

type CommentHandler struct {
	Svc    *app.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *app.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

type createCommentRequest struct {
	Content  string `json:"content" binding:"required"`
	PostID   int64  `json:"postId" binding:"required"`
	AuthorID int64  `json:"authorId" binding:"required"`
}

type updateCommentRequest struct {
	Content *string `json:"content"`
}

// ByPost GET /comments/post/:postId
func (h *CommentHandler) ByPost(c *gin.Context) {
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	comments, err := h.Svc.ByPostID(c.Request.Context(), postID)
	if err != nil {
		h.Logger.WithError(err).Error("list comments by post failed")
		response.Error(c, http.StatusInternalServerError, "failed to list comments", nil)
		return
	}
	response.Success(c, http.StatusOK, comments, "comments", nil)
}

// Create POST /comments (bearer)
func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	// authorId comes from the payload, not the token, mirroring the
	// documented surface.
	cm, err := h.Svc.Create(c.Request.Context(), app.CreateCommentInput{
		Content:  req.Content,
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		h.Logger.WithError(err).Error("create comment failed")
		response.Error(c, http.StatusInternalServerError, "failed to create comment", nil)
		return
	}
	response.Success(c, http.StatusCreated, cm, "comment created", nil)
}

// GetAll GET /comments
func (h *CommentHandler) GetAll(c *gin.Context) {
	comments, err := h.Svc.List(c.Request.Context(), repo.CommentFilter{})
	if err != nil {
		h.Logger.WithError(err).Error("list comments failed")
		response.Error(c, http.StatusInternalServerError, "failed to list comments", nil)
		return
	}
	response.Success(c, http.StatusOK, comments, "comments", nil)
}

// GetByID GET /comments/:id
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cm, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondCommentError(c, err, "get comment failed")
		return
	}
	response.Success(c, http.StatusOK, cm, "comment", nil)
}

// Update PATCH /comments/:id (bearer; no ownership check)
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if req.Content == nil {
		// Nothing to change; answer with the current row.
		cm, err := h.Svc.Get(c.Request.Context(), id)
		if err != nil {
			h.respondCommentError(c, err, "get comment failed")
			return
		}
		response.Success(c, http.StatusOK, cm, "comment", nil)
		return
	}

	cm, err := h.Svc.Update(c.Request.Context(), id, *req.Content)
	if err != nil {
		h.respondCommentError(c, err, "update comment failed")
		return
	}
	response.Success(c, http.StatusOK, cm, "comment updated", nil)
}

// Delete DELETE /comments/:id (bearer; no ownership check)
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cm, err := h.Svc.Remove(c.Request.Context(), id)
	if err != nil {
		h.respondCommentError(c, err, "delete comment failed")
		return
	}
	response.Success(c, http.StatusOK, cm, "comment deleted", nil)
}

func (h *CommentHandler) respondCommentError(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, app.ErrCommentNotFound) {
		response.Error(c, http.StatusNotFound, "comment not found", nil)
		return
	}
	h.Logger.WithError(err).Error(logMsg)
	response.Error(c, http.StatusInternalServerError, "internal error", nil)
}
