package handlers

import (
	"net/http"
	"soapbox/internal/models"
	"soapbox/internal/services"
	"soapbox/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct{}

func NewReactionHandler() *ReactionHandler {
	return &ReactionHandler{}
}

// Patch sets one reaction kind on a content item to the requested state.
func (h *ReactionHandler) Patch(c *gin.Context) {
	itemType := c.Param("type") // "opinion" or "comment"
	itemID := utils.StringToUint(c.Param("id"))

	var req struct {
		Kind   string `json:"kind" binding:"required"`
		Active *bool  `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := services.SetReaction(CurrentUser(c), itemType, itemID,
		models.ReactionKind(req.Kind), *req.Active)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Status returns the viewer's reaction state for a content item.
func (h *ReactionHandler) Status(c *gin.Context) {
	itemType := c.Param("type")
	itemID := utils.StringToUint(c.Param("id"))

	status, err := services.GetReactionStatus(CurrentUser(c), itemType, itemID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
