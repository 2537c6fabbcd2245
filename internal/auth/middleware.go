package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error"`
}

// Middleware authenticates the request with the Bearer token in the
// Authorization header. The user and session IDs are set on the context.
func Middleware(s *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrUnauthorized.Error()})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrUnauthorized.Error()})
			return
		}

		session, err := s.Authenticate(models.DB, strings.TrimSpace(parts[1]))
		if err != nil {
			if !errors.Is(err, ErrTokenInvalid) {
				log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
				c.AbortWithStatusJSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
				return
			}

			log.Debug().Str("request-id", requestid.Get(c)).Str("path", c.Request.URL.Path).Msg("rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: err.Error()})
			return
		}

		c.Set(string(models.DBContextUserID), session.UserID)
		c.Set(string(models.DBContextSession), session.ID)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user.
// It is uuid.Nil when the request was not authenticated.
func UserID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(string(models.DBContextUserID))
	u, _ := id.(uuid.UUID)
	return u
}

// SessionID returns the ID of the session the request was authenticated with.
func SessionID(c *gin.Context) uuid.UUID {
	id, _ := c.Get(string(models.DBContextSession))
	u, _ := id.(uuid.UUID)
	return u
}

const serviceKey = "ledger-auth-service"

// Inject makes the service available to handlers through FromContext.
func Inject(s *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(serviceKey, s)
		c.Next()
	}
}

// FromContext returns the service set by Inject.
func FromContext(c *gin.Context) *Service {
	return c.MustGet(serviceKey).(*Service)
}
