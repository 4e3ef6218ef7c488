package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/questboard/gamelink/models"
)

// ConnectionRepository interface defines connection database operations
type ConnectionRepository interface {
	Create(ctx context.Context, conn *models.Connection) error
	Find(ctx context.Context, userID, provider, externalID string) (*models.Connection, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Connection, error)
	Delete(ctx context.Context, userID, id string) error
}

// connectionRepository implements ConnectionRepository interface
type connectionRepository struct {
	db *sql.DB
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *sql.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

// Create persists a new connection record. The caller is responsible for
// checking uniqueness of (user_id, provider, external_id) first; the unique
// index backs that check up.
func (r *connectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	query := `
		INSERT INTO connections (id, user_id, provider, external_id, display_name, token_data, friend_sync, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	if conn.ID == "" {
		conn.ID = uuid.NewString()
	}
	if conn.CreatedAt.IsZero() {
		conn.CreatedAt = time.Now()
	}

	tokenData, err := json.Marshal(conn.TokenData)
	if err != nil {
		return fmt.Errorf("failed to encode token data: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		conn.ID,
		conn.UserID,
		conn.Provider,
		conn.ExternalID,
		conn.DisplayName,
		string(tokenData),
		conn.FriendSync,
		conn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create connection: %w", err)
	}

	return nil
}

// Find looks up a connection by its uniqueness key. It returns (nil, nil)
// when no matching record exists.
func (r *connectionRepository) Find(ctx context.Context, userID, provider, externalID string) (*models.Connection, error) {
	query := `
		SELECT id, user_id, provider, external_id, display_name, token_data, friend_sync, created_at
		FROM connections
		WHERE user_id = ? AND provider = ? AND external_id = ?
	`

	conn, err := r.scanOne(r.db.QueryRowContext(ctx, query, userID, provider, externalID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get connection: %w", err)
	}

	return conn, nil
}

// GetByUserID retrieves all connections belonging to a user
func (r *connectionRepository) GetByUserID(ctx context.Context, userID string) ([]models.Connection, error) {
	query := `
		SELECT id, user_id, provider, external_id, display_name, token_data, friend_sync, created_at
		FROM connections
		WHERE user_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer rows.Close()

	var conns []models.Connection
	for rows.Next() {
		conn, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		conns = append(conns, *conn)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating connections: %w", err)
	}

	return conns, nil
}

// Delete removes a connection by ID, scoped to its owner
func (r *connectionRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM connections WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("connection %s not found", id)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *connectionRepository) scanOne(row scanner) (*models.Connection, error) {
	var conn models.Connection
	var tokenData string

	err := row.Scan(
		&conn.ID,
		&conn.UserID,
		&conn.Provider,
		&conn.ExternalID,
		&conn.DisplayName,
		&tokenData,
		&conn.FriendSync,
		&conn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tokenData), &conn.TokenData); err != nil {
		return nil, fmt.Errorf("failed to decode token data: %w", err)
	}

	return &conn, nil
}
