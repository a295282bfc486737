package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/community-blog-api/internal/interface/http"
	"github.com/oksasatya/community-blog-api/internal/interface/middleware"
	"github.com/oksasatya/community-blog-api/pkg/helpers"
)

// CommentModule wires comment routes. Mutations require a valid token but
// are intentionally not ownership-checked.
type CommentModule struct {
	Handler *handlers.CommentHandler
	Tokens  *helpers.TokenManager
}

func NewCommentModule(h *handlers.CommentHandler, tm *helpers.TokenManager) *CommentModule {
	return &CommentModule{Handler: h, Tokens: tm}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	rg.GET("/comments", m.Handler.GetAll)
	rg.GET("/comments/:id", m.Handler.GetByID)
	rg.GET("/comments/post/:postId", m.Handler.ByPost)

	auth := middleware.BearerAuth(m.Tokens)
	rg.POST("/comments", auth, m.Handler.Create)
	rg.PATCH("/comments/:id", auth, m.Handler.Update)
	rg.DELETE("/comments/:id", auth, m.Handler.Delete)
}
