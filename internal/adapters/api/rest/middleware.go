package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errUnauthorize = errors.New("unauthorized")

func (s *Server) Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := s.checkAuth(c)
		if err != nil {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			c.Abort()
		}

		c.Next()
	}
}

// AdminOnly requires the authenticated user to carry the admin flag.
func (s *Server) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := s.checkAuth(c)
		if err != nil {
			c.Writer.WriteHeader(http.StatusUnauthorized)
			c.Abort()
			return
		}

		user, err := s.service.GetUser(c.Request.Context(), userID)
		if err != nil {
			s.log.Error("failed getting user", zap.Error(err))
			c.Writer.WriteHeader(http.StatusInternalServerError)
			c.Abort()
			return
		}
		if !user.IsAdmin {
			c.Writer.WriteHeader(http.StatusForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (s *Server) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info(
			"Request",
			zap.String("uri", c.Request.RequestURI),
			zap.Duration("duration", time.Since(start)),
			zap.String("method", c.Request.Method),
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
		)
	}
}
