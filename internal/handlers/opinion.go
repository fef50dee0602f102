package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"soapbox/internal/db"
	"soapbox/internal/models"
	"soapbox/internal/services"
	"soapbox/internal/utils"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const detailCacheTTL = 5 * time.Minute

type OpinionHandler struct{}

func NewOpinionHandler() *OpinionHandler {
	return &OpinionHandler{}
}

func (h *OpinionHandler) Create(c *gin.Context) {
	var input services.OpinionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opinion, err := services.CreateOpinion(CurrentUser(c), input)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, opinion)
}

type opinionDetail struct {
	Opinion     *models.Opinion         `json:"opinion"`
	ContentHTML string                  `json:"content_html"`
	Review      *services.ReviewState   `json:"review"`
	Comments    []*services.CommentTree `json:"comments"`
}

// Detail returns one opinion by slug with rendered content, review state
// and the viewer-annotated comment tree.
func (h *OpinionHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")
	viewer := CurrentUser(c)

	opinion, ok := h.cachedOpinion(slug)
	if !ok {
		opinion = &models.Opinion{}
		err := db.DB.Preload("User").Preload("Status").Preload("Categories").
			Where("slug = ?", slug).First(opinion).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "opinion not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		utils.GetCache().Set(detailCacheKey(slug), opinion, detailCacheTTL)
	}

	if err := services.CheckContent(viewer, services.CrudRead, opinion); err != nil {
		RespondError(c, err)
		return
	}

	reviewState, err := services.ReviewStatusCheck(models.ItemTypeOpinion, opinion.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	comments, err := services.LoadCommentTree(viewer, opinion.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, opinionDetail{
		Opinion:     opinion,
		ContentHTML: utils.RenderMarkdown(opinion.Content),
		Review:      reviewState,
		Comments:    comments,
	})
}

func (h *OpinionHandler) Update(c *gin.Context) {
	slug := c.Param("slug")

	var input services.OpinionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opinion, err := services.UpdateOpinion(CurrentUser(c), slug, input)
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.GetCache().Delete(detailCacheKey(slug))
	c.JSON(http.StatusOK, opinion)
}

// StatusPatch moves a content item to another lifecycle status.
func (h *OpinionHandler) StatusPatch(c *gin.Context) {
	itemType := c.Param("type") // "opinion" or "comment"
	id := utils.StringToUint(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.SetContentStatus(CurrentUser(c), itemType, id, req.Status)
	if err != nil {
		RespondError(c, err)
		return
	}
	utils.GetCache().Delete(detailCacheKey(item.ContentSlug()))
	c.JSON(http.StatusOK, gin.H{
		"slug":   item.ContentSlug(),
		"status": item.StatusName(),
	})
}

// List returns published opinions, newest first.
func (h *OpinionHandler) List(c *gin.Context) {
	page := utils.StringToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage := utils.StringToInt(c.DefaultQuery("per_page", "6"))
	switch perPage {
	case 6, 9, 12, 15:
	default:
		perPage = 6
	}

	var opinions []models.Opinion
	err := db.DB.Preload("User").Preload("Status").Preload("Categories").
		Joins("JOIN statuses ON statuses.id = opinions.status_id").
		Where("statuses.name = ?", models.StatusPublished).
		Order("published DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&opinions).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"opinions": opinions, "page": page, "per_page": perPage})
}

func (h *OpinionHandler) cachedOpinion(slug string) (*models.Opinion, bool) {
	if cached := utils.GetCache().Get(detailCacheKey(slug)); cached != nil {
		if opinion, ok := cached.(*models.Opinion); ok {
			return opinion, true
		}
	}
	return nil, false
}

func detailCacheKey(slug string) string {
	return fmt.Sprintf("opinion:detail:%s", slug)
}
