package services

import (
	"fmt"
	"soapbox/internal/db"
	"soapbox/internal/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int

// setupTestDB points the package at a fresh in-memory database. Each test
// gets its own named shared-cache database so every pooled connection sees
// the same tables.
func setupTestDB(t *testing.T) {
	t.Helper()

	dbSeq++
	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", dbSeq)
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrate(g))
	require.NoError(t, db.Seed(g))

	db.DB = g
}

var (
	userSeq    int
	opinionSeq int
)

func createUser(t *testing.T, role string) *models.User {
	t.Helper()
	userSeq++
	user := &models.User{
		Username: fmt.Sprintf("user%d", userSeq),
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.DB.Create(user).Error)
	return user
}

func createOpinion(t *testing.T, author *models.User, statusName string) *models.Opinion {
	t.Helper()
	opinionSeq++
	opinion, err := CreateOpinion(author, OpinionInput{
		Title:   fmt.Sprintf("Opinion %d by %s", opinionSeq, author.Username),
		Content: "Something worth saying.",
		Status:  statusName,
	})
	require.NoError(t, err)
	return opinion
}

func createComment(t *testing.T, author *models.User, opinion *models.Opinion) *models.Comment {
	t.Helper()
	comment, err := CreateComment(author, models.ItemTypeOpinion, opinion.ID, "A considered reply.")
	require.NoError(t, err)
	return comment
}
