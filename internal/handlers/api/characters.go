package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sheetforge/sheetforge/internal/domain/rulebook"
	charsvc "github.com/sheetforge/sheetforge/internal/services/character"
)

type createCharacterRequest struct {
	Name          string                 `json:"name" binding:"required"`
	ClassKey      string                 `json:"class_key" binding:"required"`
	RaceKey       string                 `json:"race_key" binding:"required"`
	SubraceKey    string                 `json:"subrace_key"`
	VariantKeys   []string               `json:"variant_keys"`
	BackgroundKey string                 `json:"background_key"`
	BaseAbilities map[string]int         `json:"base_abilities" binding:"required"`
	FlexiblePicks [][]rulebook.Attribute `json:"flexible_picks"`
}

func (h *Handler) createCharacter(c *gin.Context) {
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	abilities := make(map[rulebook.Attribute]int, len(req.BaseAbilities))
	for k, v := range req.BaseAbilities {
		abilities[rulebook.Attribute(k)] = v
	}

	output, err := h.service.CreateCharacter(c.Request.Context(), &charsvc.CreateCharacterInput{
		OwnerID:       ownerID(c),
		Name:          req.Name,
		ClassKey:      req.ClassKey,
		RaceKey:       req.RaceKey,
		SubraceKey:    req.SubraceKey,
		VariantKeys:   req.VariantKeys,
		BackgroundKey: req.BackgroundKey,
		BaseAbilities: abilities,
		FlexiblePicks: req.FlexiblePicks,
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, output.Character)
}

func (h *Handler) listCharacters(c *gin.Context) {
	output, err := h.service.ListCharacters(c.Request.Context(), &charsvc.ListCharactersInput{
		OwnerID: ownerID(c),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"characters": output.Characters})
}

func (h *Handler) getCharacter(c *gin.Context) {
	output, err := h.service.GetCharacter(c.Request.Context(), &charsvc.GetCharacterInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Character)
}

func (h *Handler) getSheet(c *gin.Context) {
	output, err := h.service.GetSheet(c.Request.Context(), &charsvc.GetSheetInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"character":         output.Character,
		"features":          output.Features,
		"hit_dice":          output.HitDice,
		"proficiency_bonus": output.ProficiencyBonus,
	})
}

type renameRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) renameCharacter(c *gin.Context) {
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.RenameCharacter(c.Request.Context(), &charsvc.RenameCharacterInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
		Name:        req.Name,
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Character)
}

func (h *Handler) deleteCharacter(c *gin.Context) {
	_, err := h.service.DeleteCharacter(c.Request.Context(), &charsvc.DeleteCharacterInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type levelUpRequest struct {
	ClassKey         string                `json:"class_key" binding:"required"`
	NewClass         bool                  `json:"new_class"`
	SubclassKey      string                `json:"subclass_key"`
	AbilityIncreases map[string]int        `json:"ability_increases"`
	FeatKey          string                `json:"feat_key"`
	OptionKeys       []string              `json:"option_keys"`
	Replacements     []charsvc.Replacement `json:"replacements"`
	InfusionKeys     []string              `json:"infusion_keys"`
	HitPointRoll     *int                  `json:"hit_point_roll"`
}

func (h *Handler) levelUp(c *gin.Context) {
	var req levelUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	increases := make(map[rulebook.Attribute]int, len(req.AbilityIncreases))
	for k, v := range req.AbilityIncreases {
		increases[rulebook.Attribute(k)] = v
	}

	output, err := h.service.LevelUp(c.Request.Context(), &charsvc.LevelUpInput{
		CharacterID:      c.Param("id"),
		OwnerID:          ownerID(c),
		ClassKey:         req.ClassKey,
		NewClass:         req.NewClass,
		SubclassKey:      req.SubclassKey,
		AbilityIncreases: increases,
		FeatKey:          req.FeatKey,
		OptionKeys:       req.OptionKeys,
		Replacements:     req.Replacements,
		InfusionKeys:     req.InfusionKeys,
		HitPointRoll:     req.HitPointRoll,
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"character": output.Character,
		"snapshot":  output.Snapshot,
	})
}

func (h *Handler) listSnapshots(c *gin.Context) {
	output, err := h.service.ListSnapshots(c.Request.Context(), &charsvc.ListSnapshotsInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": output.Snapshots})
}

type shortRestRequest struct {
	HitDice []charsvc.HitDiceSpend `json:"hit_dice"`
}

func (h *Handler) shortRest(c *gin.Context) {
	var req shortRestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.ShortRest(c.Request.Context(), &charsvc.ShortRestInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
		HitDice:     req.HitDice,
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"character":         output.Character,
		"hit_points_healed": output.HitPointsHealed,
		"features_restored": output.FeaturesRestored,
	})
}

func (h *Handler) longRest(c *gin.Context) {
	output, err := h.service.LongRest(c.Request.Context(), &charsvc.LongRestInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"character":         output.Character,
		"features_restored": output.FeaturesRestored,
	})
}

func (h *Handler) useFeature(c *gin.Context) {
	output, err := h.service.UseFeature(c.Request.Context(), &charsvc.UseFeatureInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
		FeatureKey:  c.Param("key"),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Feature)
}

func (h *Handler) restoreFeature(c *gin.Context) {
	output, err := h.service.RestoreFeature(c.Request.Context(), &charsvc.RestoreFeatureInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
		FeatureKey:  c.Param("key"),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, output.Feature)
}

type deathSaveRequest struct {
	Success bool `json:"success"`
}

func (h *Handler) recordDeathSave(c *gin.Context) {
	var req deathSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.RecordDeathSave(c.Request.Context(), &charsvc.RecordDeathSaveInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
		Success:     req.Success,
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"death_saves": output.DeathSaves,
		"stabilized":  output.Stabilized,
	})
}

func (h *Handler) publish(c *gin.Context) {
	output, err := h.service.Publish(c.Request.Context(), &charsvc.PublishInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"share_token": output.ShareToken})
}

type copyRequest struct {
	Name string `json:"name"`
}

func (h *Handler) copyByToken(c *gin.Context) {
	var req copyRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.CopyByToken(c.Request.Context(), &charsvc.CopyByTokenInput{
		ShareToken: c.Param("token"),
		OwnerID:    ownerID(c),
		Name:       req.Name,
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, output.Character)
}

func (h *Handler) duplicate(c *gin.Context) {
	var req copyRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.Duplicate(c.Request.Context(), &charsvc.DuplicateInput{
		CharacterID: c.Param("id"),
		OwnerID:     ownerID(c),
		Name:        req.Name,
	})
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, output.Character)
}
