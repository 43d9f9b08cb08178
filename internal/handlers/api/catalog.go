package api

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
	dnderr "github.com/sheetforge/sheetforge/internal/errors"
)

// Read-only catalog browsing. These serve pickers in the character builder
// and never touch character state.

func (h *Handler) listSubclasses(c *gin.Context) {
	content, err := h.catalog.Content(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}

	key := c.Param("key")
	if _, ok := content.Classes[key]; !ok {
		h.respondErr(c, dnderr.NotFoundf("class '%s' not found", key))
		return
	}

	subclasses := content.SubclassesOf(key)
	sort.Slice(subclasses, func(i, j int) bool { return subclasses[i].Key < subclasses[j].Key })
	c.JSON(http.StatusOK, gin.H{"subclasses": subclasses})
}

func (h *Handler) listVariants(c *gin.Context) {
	content, err := h.catalog.Content(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}

	key := c.Param("key")
	if _, ok := content.Races[key]; !ok {
		h.respondErr(c, dnderr.NotFoundf("race '%s' not found", key))
		return
	}

	variants := content.VariantsOf(key)
	sort.Slice(variants, func(i, j int) bool { return variants[i].Key < variants[j].Key })
	c.JSON(http.StatusOK, gin.H{"variants": variants})
}

func (h *Handler) listOptions(c *gin.Context) {
	group := c.Query("group")
	if group == "" {
		h.respondErr(c, dnderr.InvalidArgument("group query parameter is required"))
		return
	}

	content, err := h.catalog.Content(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}

	options := content.OptionsInGroup(rulebook.ChoiceGroup(group))
	sort.Slice(options, func(i, j int) bool { return options[i].Key < options[j].Key })
	c.JSON(http.StatusOK, gin.H{"options": options})
}
