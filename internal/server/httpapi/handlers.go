package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/opsbot/internal/server/services"
	"github.com/gin-gonic/gin"
)

// loginRequest accepts the OAuth2 password form (username, password) as
// well as a JSON body (email, password).
type loginRequest struct {
	Email    string `form:"username" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type createSessionRequest struct {
	Title string `json:"title"`
}

type postMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type addCredentialRequest struct {
	Service string         `json:"service" binding:"required"`
	Details map[string]any `json:"details"`
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (s *HTTPServer) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to DevOps Bot API"})
}

func (s *HTTPServer) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *HTTPServer) register(c *gin.Context) {
	var req services.NewUser
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := s.users.Register(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (s *HTTPServer) listUsers(c *gin.Context) {
	list, err := s.users.ListUsers(c.Request.Context(), token(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *HTTPServer) me(c *gin.Context) {
	u, err := s.users.Me(c.Request.Context(), token(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *HTTPServer) getUser(c *gin.Context) {
	u, err := s.users.GetUser(c.Request.Context(), token(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *HTTPServer) createUser(c *gin.Context) {
	var req services.NewUser
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := s.users.CreateUser(c.Request.Context(), token(c), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (s *HTTPServer) deleteUser(c *gin.Context) {
	if err := s.users.DeleteUser(c.Request.Context(), token(c), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *HTTPServer) toggleUserStatus(c *gin.Context) {
	u, err := s.users.ToggleUserStatus(c.Request.Context(), token(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *HTTPServer) listSessions(c *gin.Context) {
	list, err := s.chat.ListSessions(c.Request.Context(), token(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *HTTPServer) createSession(c *gin.Context) {
	var req createSessionRequest
	// an empty body means the default title
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	session, err := s.chat.CreateSession(c.Request.Context(), token(c), req.Title)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (s *HTTPServer) getSession(c *gin.Context) {
	session, err := s.chat.GetSession(c.Request.Context(), token(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *HTTPServer) postMessage(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := s.chat.PostMessage(c.Request.Context(), token(c), c.Param("id"), req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (s *HTTPServer) listCredentials(c *gin.Context) {
	list, err := s.credentials.List(c.Request.Context(), token(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *HTTPServer) addCredential(c *gin.Context) {
	var req addCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cred, err := s.credentials.Add(c.Request.Context(), token(c), req.Service, req.Details)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cred)
}

func (s *HTTPServer) deleteCredential(c *gin.Context) {
	if err := s.credentials.Delete(c.Request.Context(), token(c), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *HTTPServer) getAnalytics(c *gin.Context) {
	a, err := s.analytics.Get(c.Request.Context(), token(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
