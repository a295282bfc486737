package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/community-blog-api/internal/interface/http"
	"github.com/oksasatya/community-blog-api/internal/interface/middleware"
	"github.com/oksasatya/community-blog-api/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Tokens  *helpers.TokenManager
}

func NewAuthModule(h *handlers.AuthHandler, tm *helpers.TokenManager) *AuthModule {
	return &AuthModule{Handler: h, Tokens: tm}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", m.Handler.SignUp)
	rg.POST("/auth/signin", m.Handler.SignIn)
	rg.POST("/auth/signout", middleware.BearerAuth(m.Tokens), m.Handler.SignOut)
}
