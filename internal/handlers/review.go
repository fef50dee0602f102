package handlers

import (
	"net/http"
	"soapbox/internal/services"
	"soapbox/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct{}

func NewReviewHandler() *ReviewHandler {
	return &ReviewHandler{}
}

// Report files a moderation review against a content item.
func (h *ReviewHandler) Report(c *gin.Context) {
	itemType := c.Param("type") // "opinion" or "comment"
	itemID := utils.StringToUint(c.Param("id"))

	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := services.Report(CurrentUser(c), itemType, itemID, req.Reason)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// StatusPatch moves a review between non-terminal states and optionally
// claims it for the acting moderator.
func (h *ReviewHandler) StatusPatch(c *gin.Context) {
	reviewID := utils.StringToUint(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
		Claim  bool   `json:"claim"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := services.SetReviewStatus(CurrentUser(c), reviewID, req.Status, req.Claim)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// Decision closes a review with a terminal status and a reviewer note.
func (h *ReviewHandler) Decision(c *gin.Context) {
	reviewID := utils.StringToUint(c.Param("id"))

	var req struct {
		Status  string `json:"status" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := services.Decide(CurrentUser(c), reviewID, req.Status, req.Comment)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// List returns the open moderation queue.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := services.ListOpenReviews(CurrentUser(c))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Get returns one review.
func (h *ReviewHandler) Get(c *gin.Context) {
	reviewID := utils.StringToUint(c.Param("id"))

	review, err := services.GetReview(reviewID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}
