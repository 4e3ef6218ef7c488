package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/questboard/gamelink/database"
	"github.com/questboard/gamelink/models"
	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return database.GetDB()
}

func testConnection(userID, externalID string) *models.Connection {
	return &models.Connection{
		UserID:      userID,
		Provider:    "xbox",
		ExternalID:  externalID,
		DisplayName: "Gamer1",
		TokenData: models.TokenData{
			AccessToken: "AT1",
			TokenType:   "bearer",
			ExpiresIn:   3600,
			FetchedAt:   time.Now().UTC().Truncate(time.Second),
		},
		FriendSync: true,
	}
}

func TestConnectionRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	conn := testConnection("u1", "X1")
	if err := repo.Create(ctx, conn); err != nil {
		t.Fatalf("Failed to create connection: %v", err)
	}

	if conn.ID == "" {
		t.Error("Expected connection ID to be set after creation")
	}
	if conn.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set after creation")
	}

	found, err := repo.Find(ctx, "u1", "xbox", "X1")
	if err != nil {
		t.Fatalf("Failed to find connection: %v", err)
	}
	if found == nil {
		t.Fatal("Expected connection to be found")
	}

	if found.DisplayName != "Gamer1" {
		t.Errorf("Expected display name Gamer1, got %s", found.DisplayName)
	}
	if found.TokenData.AccessToken != "AT1" {
		t.Errorf("Expected access token AT1, got %s", found.TokenData.AccessToken)
	}
	if found.TokenData.FetchedAt.IsZero() {
		t.Error("Expected fetched_at to survive the round trip")
	}
	if !found.FriendSync {
		t.Error("Expected friend_sync to be true")
	}
}

func TestConnectionRepository_FindMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConnectionRepository(db)

	found, err := repo.Find(context.Background(), "u1", "xbox", "nope")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if found != nil {
		t.Error("Expected nil for a missing connection")
	}
}

func TestConnectionRepository_UniqueIndex(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testConnection("u1", "X1")); err != nil {
		t.Fatalf("Failed to create connection: %v", err)
	}

	// Same (user, provider, external_id) must be rejected by the storage layer.
	err := repo.Create(ctx, testConnection("u1", "X1"))
	if err == nil {
		t.Error("Expected duplicate connection to be rejected")
	}

	// Same external identity under a different user is fine.
	if err := repo.Create(ctx, testConnection("u2", "X1")); err != nil {
		t.Errorf("Unexpected error for different user: %v", err)
	}
}

func TestConnectionRepository_GetByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, testConnection("u1", "X1")); err != nil {
		t.Fatalf("Failed to create connection: %v", err)
	}
	if err := repo.Create(ctx, testConnection("u1", "X2")); err != nil {
		t.Fatalf("Failed to create connection: %v", err)
	}
	if err := repo.Create(ctx, testConnection("u2", "X3")); err != nil {
		t.Fatalf("Failed to create connection: %v", err)
	}

	conns, err := repo.GetByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("Failed to get connections: %v", err)
	}
	if len(conns) != 2 {
		t.Errorf("Expected 2 connections, got %d", len(conns))
	}
}

func TestConnectionRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConnectionRepository(db)
	ctx := context.Background()

	conn := testConnection("u1", "X1")
	if err := repo.Create(ctx, conn); err != nil {
		t.Fatalf("Failed to create connection: %v", err)
	}

	// A different user must not be able to delete it.
	if err := repo.Delete(ctx, "u2", conn.ID); err == nil {
		t.Error("Expected delete by non-owner to fail")
	}

	if err := repo.Delete(ctx, "u1", conn.ID); err != nil {
		t.Fatalf("Failed to delete connection: %v", err)
	}

	found, err := repo.Find(ctx, "u1", "xbox", "X1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if found != nil {
		t.Error("Expected connection to be gone after delete")
	}
}
