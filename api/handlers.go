package api

import (
	"github.com/gin-gonic/gin"

	"github.com/in4matic/wallet-api/db"
	"github.com/in4matic/wallet-api/models"
	"github.com/in4matic/wallet-api/token"
)

type Handler struct {
	storage *db.Storage
	tokens  *token.Service
}

func NewHandler(s *db.Storage, t *token.Service) *Handler {
	return &Handler{storage: s, tokens: t}
}

// currentUser returns the user the auth middleware attached to the context.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(ctxUserKey).(*models.User)
}
