package services_test

import (
	"testing"

	"listkeeper/app/db"
	"listkeeper/app/models"
	"listkeeper/app/repo"
	"listkeeper/app/services"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.ListItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func createUser(t *testing.T, gdb *gorm.DB, username string) uint {
	t.Helper()
	u := models.User{Username: username, Hash: "irrelevant"}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u.ID
}

func newListService(t *testing.T) (*services.ListService, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	return services.NewListService(repo.NewListRepository(gdb)), gdb
}

func newUserService(t *testing.T) (*services.UserService, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	return services.NewUserService(repo.NewUserRepository(gdb)), gdb
}
