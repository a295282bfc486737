package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/community-blog-api/internal/interface/http"
	"github.com/oksasatya/community-blog-api/internal/interface/middleware"
	"github.com/oksasatya/community-blog-api/pkg/helpers"
)

// PostModule wires post routes.
// Public: list, read, per-category listing, category stats.
// Protected: create, update, delete (owner-only enforced by the service).
type PostModule struct {
	Handler *handlers.PostHandler
	Tokens  *helpers.TokenManager
}

func NewPostModule(h *handlers.PostHandler, tm *helpers.TokenManager) *PostModule {
	return &PostModule{Handler: h, Tokens: tm}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.GET("/posts", m.Handler.FindAll)
	rg.GET("/posts/:id", m.Handler.FindOne)
	rg.GET("/posts/stats/categories", m.Handler.Stats)
	rg.GET("/posts/category/:category", m.Handler.ByCategory)

	auth := middleware.BearerAuth(m.Tokens)
	rg.POST("/posts", auth, m.Handler.Create)
	rg.PUT("/posts/:id", auth, m.Handler.Update)
	rg.DELETE("/posts/:id", auth, m.Handler.Delete)
}
