package httpapi

import (
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) routes(r *gin.Engine, loginLimiter *limiterCache[string]) {
	r.GET("/", s.root)
	r.GET("/ping", s.ping)

	r.POST("/token", s.rateLimit(loginLimiter), s.login)
	r.POST("/register", s.register)

	authed := r.Group("/")
	authed.Use(bearerToken())
	{
		authed.GET("/users", s.listUsers)
		authed.GET("/users/me", s.me)
		authed.GET("/users/:id", s.getUser)
		authed.POST("/users", s.createUser)
		authed.DELETE("/users/:id", s.deleteUser)
		authed.PATCH("/users/:id/status", s.toggleUserStatus)

		authed.GET("/chat/sessions", s.listSessions)
		authed.POST("/chat/sessions", s.createSession)
		authed.GET("/chat/sessions/:id", s.getSession)
		authed.POST("/chat/sessions/:id/messages", s.postMessage)

		authed.GET("/credentials", s.listCredentials)
		authed.POST("/credentials", s.addCredential)
		authed.DELETE("/credentials/:id", s.deleteCredential)

		authed.GET("/admin/analytics", s.getAnalytics)
	}
}
