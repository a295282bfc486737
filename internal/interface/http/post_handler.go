package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/community-blog-api/internal/application"
	"github.com/oksasatya/community-blog-api/internal/domain/entity"
	"github.com/oksasatya/community-blog-api/internal/interface/middleware"
	"github.com/oksasatya/community-blog-api/pkg/response"
	"github.com/oksasatya/community-blog-api/pkg/validation"
)

type PostHandler struct {
	Svc    *app.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *app.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Title    string `json:"title" binding:"required,min=3"`
	Content  string `json:"content" binding:"required,min=10"`
	Category string `json:"category" binding:"required,oneof=HISTORY FOOD PETS HEALTH FASHION EXERCISE OTHERS"`
}

// omitnil rather than omitempty: an explicit "" must still hit the
// min/oneof validators, only an absent field skips them.
type updatePostRequest struct {
	Title    *string `json:"title" binding:"omitnil,min=3"`
	Content  *string `json:"content" binding:"omitnil,min=10"`
	Category *string `json:"category" binding:"omitnil,oneof=HISTORY FOOD PETS HEALTH FASHION EXERCISE OTHERS"`
}

// Create POST /posts (bearer)
func (h *PostHandler) Create(c *gin.Context) {
	uid, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), uid, app.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: entity.Category(req.Category),
	})
	if err != nil {
		h.Logger.WithError(err).Error("create post failed")
		response.Error(c, http.StatusInternalServerError, "failed to create post", nil)
		return
	}
	response.Success(c, http.StatusCreated, p, "post created", nil)
}

// FindAll GET /posts?category&authorId&searchTerm&skip&take
func (h *PostHandler) FindAll(c *gin.Context) {
	var params app.ListParams

	if raw := c.Query("category"); raw != "" {
		cat, err := entity.ParseCategory(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid category", map[string]string{"category": err.Error()})
			return
		}
		params.Category = &cat
	}
	if raw := c.Query("authorId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid authorId", map[string]string{"authorId": "must be numeric"})
			return
		}
		params.AuthorID = &id
	}
	params.SearchTerm = c.Query("searchTerm")
	if raw := c.Query("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid skip", map[string]string{"skip": "must be numeric"})
			return
		}
		params.Skip = n
	}
	if raw := c.Query("take"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid take", map[string]string{"take": "must be numeric"})
			return
		}
		params.Take = n
	}

	res, err := h.Svc.FindAll(c.Request.Context(), params)
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Error(c, http.StatusInternalServerError, "failed to list posts", nil)
		return
	}
	response.Success(c, http.StatusOK, res.Posts, "posts", res.Metadata)
}

// FindOne GET /posts/:id
func (h *PostHandler) FindOne(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.Svc.FindOne(c.Request.Context(), id)
	if err != nil {
		h.respondPostError(c, err, "get post failed")
		return
	}
	response.Success(c, http.StatusOK, p, "post", nil)
}

// Update PUT /posts/:id (bearer, owner only)
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := app.UpdatePostInput{Title: req.Title, Content: req.Content}
	if req.Category != nil {
		cat := entity.Category(*req.Category)
		in.Category = &cat
	}

	p, err := h.Svc.Update(c.Request.Context(), id, uid, in)
	if err != nil {
		h.respondPostError(c, err, "update post failed")
		return
	}
	response.Success(c, http.StatusOK, p, "post updated", nil)
}

// Delete DELETE /posts/:id (bearer, owner only)
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	uid, ok := middleware.CallerID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	if err := h.Svc.Remove(c.Request.Context(), id, uid); err != nil {
		h.respondPostError(c, err, "delete post failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Post deleted successfully"}, "post deleted", nil)
}

// ByCategory GET /posts/category/:category
func (h *PostHandler) ByCategory(c *gin.Context) {
	cat, err := entity.ParseCategory(c.Param("category"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid category", map[string]string{"category": err.Error()})
		return
	}

	posts, err := h.Svc.ByCategory(c.Request.Context(), cat)
	if err != nil {
		h.Logger.WithError(err).Error("list posts by category failed")
		response.Error(c, http.StatusInternalServerError, "failed to list posts", nil)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts", nil)
}

// Stats GET /posts/stats/categories
func (h *PostHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.CategoryStats(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("category stats failed")
		response.Error(c, http.StatusInternalServerError, "failed to load stats", nil)
		return
	}
	response.Success(c, http.StatusOK, stats, "category stats", nil)
}

func (h *PostHandler) respondPostError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, app.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, "post not found", nil)
	case errors.Is(err, app.ErrNotPostOwner):
		response.Error(c, http.StatusForbidden, "you can only modify your own posts", nil)
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}

// pathID parses a numeric path parameter, answering 400 itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid "+name, map[string]string{name: "must be numeric"})
		return 0, false
	}
	return id, true
}
