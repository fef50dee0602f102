package services

import (
	"soapbox/internal/db"
	"soapbox/internal/models"
	"soapbox/internal/utils"
	"strings"

	"gorm.io/gorm"
)

// CreateComment attaches a comment to an opinion or to another comment.
// Comments publish immediately.
func CreateComment(actor *models.User, parentType string, parentID uint, content string) (*models.Comment, error) {
	if actor == nil {
		return nil, forbiddenf("authentication required")
	}
	if !HasPerm(actor, CrudPerm(models.ItemTypeComment, CrudCreate)) {
		return nil, forbiddenf("insufficient permissions")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validationf("content is required")
	}

	var comment *models.Comment
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		parent, err := LoadContent(tx, parentType, parentID)
		if err != nil {
			return err
		}
		// Commenting follows read visibility: no replies on another
		// user's unpublished content.
		if err := CheckContent(actor, CrudRead, parent); err != nil {
			return err
		}

		published, err := StatusByName(tx, models.StatusPublished)
		if err != nil {
			return err
		}

		comment = &models.Comment{
			Slug:     utils.UniqueSlug(utils.Excerpt(content, 30)),
			UserID:   actor.ID,
			Content:  content,
			StatusID: published.ID,
		}
		switch item := parent.(type) {
		case *models.Opinion:
			comment.OpinionID = item.ID
		case *models.Comment:
			comment.OpinionID = item.OpinionID
			comment.ParentID = &item.ID
			comment.Level = item.Level + 1
		}
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		comment.Status = *published
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment edits a comment's text. Only the author may edit; the slug
// stays as created.
func UpdateComment(actor *models.User, commentID uint, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validationf("content is required")
	}

	var comment models.Comment
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		target, err := LoadContent(tx, models.ItemTypeComment, commentID)
		if err != nil {
			return err
		}
		if err := CheckContent(actor, CrudUpdate, target); err != nil {
			return err
		}
		comment = *target.(*models.Comment)
		if err := tx.Model(&comment).Update("content", content).Error; err != nil {
			return err
		}
		comment.Content = content
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// CommentTree is a comment with its replies, each annotated with the render
// depth for the viewing user (zero when the viewer has hidden it).
type CommentTree struct {
	Comment     models.Comment `json:"comment"`
	RenderDepth int            `json:"render_depth"`
	Replies     []*CommentTree `json:"replies"`
}

// LoadCommentTree builds the reply tree for an opinion, oldest first,
// annotated with per-viewer render depth.
func LoadCommentTree(viewer *models.User, opinionID uint) ([]*CommentTree, error) {
	var comments []models.Comment
	err := db.DB.Preload("Status").Preload("User").
		Where("opinion_id = ?", opinionID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint]*CommentTree, len(comments))
	var roots []*CommentTree
	for i := range comments {
		comment := comments[i]
		node := &CommentTree{
			Comment:     comment,
			RenderDepth: RenderDepth(viewer, models.ItemTypeComment, comment.ID),
		}
		nodes[comment.ID] = node
		if comment.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*comment.ParentID]; ok {
			parent.Replies = append(parent.Replies, node)
		} else {
			// Orphaned by a parent filter, surface at top level.
			roots = append(roots, node)
		}
	}
	return roots, nil
}
