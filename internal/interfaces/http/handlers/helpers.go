package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"marketplace.backend/internal/domain/entities"
	domainerrors "marketplace.backend/internal/domain/errors"
	"marketplace.backend/internal/interfaces/http/middleware"
	"marketplace.backend/internal/interfaces/http/response"
	"marketplace.backend/pkg/utils"
)

// listBody is the {count, <key>} envelope of every list response.
func listBody[T any](key string, items []T) gin.H {
	if items == nil {
		items = []T{}
	}
	return gin.H{"count": len(items), key: items}
}

func countedData[T any](items []T) gin.H {
	if items == nil {
		items = []T{}
	}
	return gin.H{"count": len(items), "data": items}
}

func requireIdentity(c *gin.Context) (entities.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Error(c, domainerrors.Unauthenticated("authentication required"))
		return entities.Identity{}, false
	}
	return identity, true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return false
	}
	return true
}

func pathID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, ok := utils.ParseUUID(c.Param("id"))
	if !ok {
		response.Error(c, domainerrors.Validation("invalid "+what+" id"))
		return uuid.Nil, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, ok := utils.ParseUUID(raw)
	if !ok {
		response.Error(c, domainerrors.Validation("invalid "+name+" id"))
		return nil, false
	}
	return &id, true
}
