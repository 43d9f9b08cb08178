// Package api exposes the character service over HTTP as a thin JSON layer.
// All rule decisions live in the service; handlers only translate transport.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sheetforge/sheetforge/internal/catalog"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
	charsvc "github.com/sheetforge/sheetforge/internal/services/character"
)

// Handler wires the character service into gin routes.
type Handler struct {
	service charsvc.Service
	catalog *catalog.Catalog
	log     zerolog.Logger
}

// HandlerConfig holds the handler's dependencies.
type HandlerConfig struct {
	Service charsvc.Service
	Catalog *catalog.Catalog
	Logger  zerolog.Logger
}

// NewHandler creates the API handler. Panics on a missing dependency.
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.Service == nil {
		panic("service is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	return &Handler{service: cfg.Service, catalog: cfg.Catalog, log: cfg.Logger}
}

// RegisterRoutes mounts every endpoint under the given router group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/characters", h.createCharacter)
	r.GET("/characters", h.listCharacters)
	r.GET("/characters/:id", h.getCharacter)
	r.GET("/characters/:id/sheet", h.getSheet)
	r.PATCH("/characters/:id/name", h.renameCharacter)
	r.DELETE("/characters/:id", h.deleteCharacter)

	r.POST("/characters/:id/level-up", h.levelUp)
	r.GET("/characters/:id/snapshots", h.listSnapshots)

	r.POST("/characters/:id/short-rest", h.shortRest)
	r.POST("/characters/:id/long-rest", h.longRest)
	r.POST("/characters/:id/features/:key/use", h.useFeature)
	r.POST("/characters/:id/features/:key/restore", h.restoreFeature)
	r.POST("/characters/:id/death-saves", h.recordDeathSave)

	r.POST("/characters/:id/publish", h.publish)
	r.POST("/characters/:id/duplicate", h.duplicate)
	r.POST("/shared/:token/copy", h.copyByToken)

	r.GET("/catalog/classes/:key/subclasses", h.listSubclasses)
	r.GET("/catalog/races/:key/variants", h.listVariants)
	r.GET("/catalog/options", h.listOptions)
}

// ownerID reads the acting owner from the request. Authentication proper is
// out of scope; the gateway in front of this service sets the header.
func ownerID(c *gin.Context) string {
	return c.GetHeader("X-Owner-ID")
}

// respondErr maps an application error code onto an HTTP status.
func (h *Handler) respondErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch dnderr.GetCode(err) {
	case dnderr.CodeInvalidArgument:
		status = http.StatusBadRequest
	case dnderr.CodeNotFound:
		status = http.StatusNotFound
	case dnderr.CodeAlreadyExists:
		status = http.StatusConflict
	case dnderr.CodePermissionDenied:
		status = http.StatusForbidden
	case dnderr.CodeValidation, dnderr.CodeMaxLevelReached:
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
		"code":  dnderr.GetCode(err),
	})
}
