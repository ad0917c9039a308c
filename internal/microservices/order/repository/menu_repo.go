package repository

import (
	"context"
	"database/sql"
	"fmt"

	"noodle-pos/internal/microservices/order/domain/dao"
)

type MenuRepositoryInterface interface {
	EnsureDefaultMenu(ctx context.Context) error
	ListMenuItems(ctx context.Context) ([]dao.MenuItem, error)
}

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) MenuRepositoryInterface {
	return &MenuRepository{db: db}
}

// defaultMenu is the boat-noodle card seeded on first start.
var defaultMenu = []dao.MenuItem{
	{Name: "Boat noodle pork, thin rice noodle", Price: 45},
	{Name: "Boat noodle pork, rice vermicelli", Price: 45},
	{Name: "Boat noodle pork, wide rice noodle", Price: 45},
	{Name: "Boat noodle beef, thin rice noodle", Price: 50},
	{Name: "Boat noodle beef, rice vermicelli", Price: 50},
	{Name: "Boat noodle beef, wide rice noodle", Price: 50},
	{Name: "Dry boat noodle pork", Price: 45},
	{Name: "Dry boat noodle beef", Price: 50},
	{Name: "Pork soup, no noodles", Price: 55},
	{Name: "Pork soup, no noodles (large)", Price: 65},
	{Name: "Tom yum pork soup, no noodles", Price: 60},
	{Name: "Extra noodles", Price: 10},
	{Name: "Extra pork/beef", Price: 15},
	{Name: "Crispy pork rinds", Price: 10},
}

// EnsureDefaultMenu seeds the catalog when the table is empty. Gating
// on the row count rather than on store existence means an emptied
// catalog gets reseeded on the next start.
func (mr *MenuRepository) EnsureDefaultMenu(ctx context.Context) error {
	var count int
	if err := mr.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count menu items: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := mr.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, item := range defaultMenu {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO menu_items (name, price) VALUES ($1, $2)
		`, item.Name, item.Price); err != nil {
			return fmt.Errorf("failed to seed menu item %s: %w", item.Name, err)
		}
	}

	return tx.Commit()
}

func (mr *MenuRepository) ListMenuItems(ctx context.Context) ([]dao.MenuItem, error) {
	rows, err := mr.db.QueryContext(ctx, `
		SELECT id, name, price FROM menu_items ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	items := make([]dao.MenuItem, 0)
	for rows.Next() {
		var it dao.MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Price); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
