package services

import (
	"testing"

	"matrimony_server/db"
	"matrimony_server/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a unique in-memory database per test with the same
// constraints and error translation as production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func seedUser(t *testing.T, conn *gorm.DB, user models.User) models.User {
	t.Helper()
	if user.Password == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		user.Password = string(hash)
	}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", user.Email, err)
	}
	return user
}
