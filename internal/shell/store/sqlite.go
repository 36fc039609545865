package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"

	"github.com/artpar/planter/internal/core/domain"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// =============================================================================
// SQLiteStore
// =============================================================================

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	// Open database connection
	db, err := sqlx.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, NewStoreError("NewSQLiteStore", "", "", "failed to open database", ErrConnectionFailed)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "", "failed to ping database", ErrConnectionFailed)
	}

	// Run migrations
	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "", err.Error(), ErrMigrationFailed)
	}

	return &SQLiteStore{db: db}, nil
}

// runMigrations runs database migrations using embedded SQL files.
func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// Plant Operations
// =============================================================================

// plantRow represents a plant row in the database.
type plantRow struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	Image     string  `db:"image"`
	Price     float64 `db:"price"`
	IsInStock bool    `db:"is_in_stock"`
}

func (s *SQLiteStore) CreatePlant(ctx context.Context, plant *domain.Plant) error {
	query := `
		INSERT INTO plants (name, image, price, is_in_stock)
		VALUES (:name, :image, :price, :is_in_stock)`

	row := map[string]any{
		"name":        plant.Name,
		"image":       plant.Image,
		"price":       plant.Price,
		"is_in_stock": plant.IsInStock,
	}

	result, err := s.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return NewStoreError("CreatePlant", "plant", "", err.Error(), err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return NewStoreError("CreatePlant", "plant", "", err.Error(), err)
	}
	plant.ID = id

	return nil
}

func (s *SQLiteStore) GetPlant(ctx context.Context, id int64) (*domain.Plant, error) {
	query := `SELECT * FROM plants WHERE id = ?`

	var row plantRow
	err := s.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetPlant", "plant", formatID(id), "plant not found", ErrNotFound)
		}
		return nil, NewStoreError("GetPlant", "plant", formatID(id), err.Error(), err)
	}

	return rowToPlant(&row), nil
}

func (s *SQLiteStore) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	query := `SELECT * FROM plants ORDER BY id`

	var rows []plantRow
	err := s.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, NewStoreError("ListPlants", "plant", "", err.Error(), err)
	}

	plants := make([]domain.Plant, 0, len(rows))
	for _, row := range rows {
		plants = append(plants, *rowToPlant(&row))
	}

	return plants, nil
}

func (s *SQLiteStore) UpdatePlant(ctx context.Context, plant *domain.Plant) error {
	query := `
		UPDATE plants SET
			name = :name,
			image = :image,
			price = :price,
			is_in_stock = :is_in_stock
		WHERE id = :id`

	row := map[string]any{
		"id":          plant.ID,
		"name":        plant.Name,
		"image":       plant.Image,
		"price":       plant.Price,
		"is_in_stock": plant.IsInStock,
	}

	result, err := s.db.NamedExecContext(ctx, query, row)
	if err != nil {
		return NewStoreError("UpdatePlant", "plant", formatID(plant.ID), err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("UpdatePlant", "plant", formatID(plant.ID), "plant not found", ErrNotFound)
	}

	return nil
}

func (s *SQLiteStore) DeletePlant(ctx context.Context, id int64) error {
	query := `DELETE FROM plants WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return NewStoreError("DeletePlant", "plant", formatID(id), err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeletePlant", "plant", formatID(id), "plant not found", ErrNotFound)
	}

	return nil
}

// =============================================================================
// Row Mapping
// =============================================================================

func rowToPlant(row *plantRow) *domain.Plant {
	return &domain.Plant{
		ID:        row.ID,
		Name:      row.Name,
		Image:     row.Image,
		Price:     row.Price,
		IsInStock: row.IsInStock,
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
