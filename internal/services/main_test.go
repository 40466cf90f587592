package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mdd-dev/mdd/db"
	"github.com/mdd-dev/mdd/internal/auth"
	"github.com/mdd-dev/mdd/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global handle at a fresh in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same :memory: database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Subscription{},
		&models.Post{},
		&models.Comment{},
	))

	db.DB = gdb

	t.Cleanup(func() {
		sqlDB.Close()
	})
}

func setupTestSecret(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-signing-key")
	require.NoError(t, auth.InitJWTSecret())
}

func mustRegister(t *testing.T, name, email, password string) string {
	t.Helper()
	token, err := Register(name, email, password)
	require.NoError(t, err)
	return token
}

func mustCreateTopic(t *testing.T, title, description string) models.Topic {
	t.Helper()
	require.NoError(t, CreateTopic(title, description))

	var topic models.Topic
	require.NoError(t, db.DB.Where("title = ?", title).Last(&topic).Error)
	return topic
}
