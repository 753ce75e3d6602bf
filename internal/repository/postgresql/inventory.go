package postgresql

import (
	"context"
	"fmt"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/inventory"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type materialRepositoryImpl struct {
	db *database.DB
}

func NewMaterialRepository(db *database.DB) inventory.MaterialRepository {
	return &materialRepositoryImpl{db: db}
}

// Create implements inventory.MaterialRepository.
func (r *materialRepositoryImpl) Create(ctx context.Context, material inventory.Material) (inventory.Material, error) {
	q := querier(ctx, r.db)

	query := `
		INSERT INTO materials (id, name, unit, stock, min_stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, unit, stock, min_stock, created_at, updated_at
	`

	var created inventory.Material
	err := q.QueryRow(ctx, query,
		material.ID,
		material.Name,
		material.Unit,
		material.Stock,
		material.MinStock,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Unit,
		&created.Stock,
		&created.MinStock,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return inventory.Material{}, err
	}

	return created, nil
}

// GetByID implements inventory.MaterialRepository.
func (r *materialRepositoryImpl) GetByID(ctx context.Context, id string) (inventory.Material, error) {
	q := querier(ctx, r.db)

	query := `
		SELECT id, name, unit, stock, min_stock, created_at, updated_at
		FROM materials
		WHERE id = $1
	`

	var m inventory.Material
	err := q.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.Name,
		&m.Unit,
		&m.Stock,
		&m.MinStock,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return inventory.Material{}, inventory.ErrMaterialNotFound
		}
		return inventory.Material{}, err
	}

	return m, nil
}

// List implements inventory.MaterialRepository.
func (r *materialRepositoryImpl) List(ctx context.Context) ([]inventory.Material, error) {
	q := querier(ctx, r.db)

	query := `
		SELECT id, name, unit, stock, min_stock, created_at, updated_at
		FROM materials
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []inventory.Material
	for rows.Next() {
		var m inventory.Material
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Unit,
			&m.Stock,
			&m.MinStock,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}

	return materials, rows.Err()
}

// Update implements inventory.MaterialRepository.
func (r *materialRepositoryImpl) Update(ctx context.Context, id string, name *string, unit *string, minStock *float64) (inventory.Material, error) {
	q := querier(ctx, r.db)

	query := `
		UPDATE materials
		SET name = COALESCE($1, name),
			unit = COALESCE($2, unit),
			min_stock = COALESCE($3, min_stock),
			updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, unit, stock, min_stock, created_at, updated_at
	`

	var updated inventory.Material
	err := q.QueryRow(ctx, query, name, unit, minStock, id).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Unit,
		&updated.Stock,
		&updated.MinStock,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return inventory.Material{}, inventory.ErrMaterialNotFound
		}
		return inventory.Material{}, err
	}

	return updated, nil
}

// RegisterMovement implements inventory.MaterialRepository. The stock
// adjustment and the movement row commit or roll back together.
func (r *materialRepositoryImpl) RegisterMovement(ctx context.Context, movement inventory.Movement) (inventory.Movement, error) {
	var created inventory.Movement

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := InjectTx(ctx, tx)
		q := querier(txCtx, r.db)

		var stock float64
		err := q.QueryRow(txCtx, `SELECT stock FROM materials WHERE id = $1 FOR UPDATE`, movement.MaterialID).Scan(&stock)
		if err != nil {
			if err == pgx.ErrNoRows {
				return inventory.ErrMaterialNotFound
			}
			return fmt.Errorf("failed to lock material row: %w", err)
		}

		delta := movement.Quantity
		if movement.Type == inventory.MovementTypeOut {
			if stock < movement.Quantity {
				return inventory.ErrInsufficientStock
			}
			delta = -movement.Quantity
		}

		if _, err := q.Exec(txCtx,
			`UPDATE materials SET stock = stock + $1, updated_at = NOW() WHERE id = $2`,
			delta, movement.MaterialID,
		); err != nil {
			return fmt.Errorf("failed to adjust stock: %w", err)
		}

		insert := `
			INSERT INTO material_movements (id, material_id, user_id, type, quantity, note)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, material_id, user_id, type, quantity, note, created_at
		`
		if err := q.QueryRow(txCtx, insert,
			movement.ID,
			movement.MaterialID,
			movement.UserID,
			movement.Type,
			movement.Quantity,
			movement.Note,
		).Scan(
			&created.ID,
			&created.MaterialID,
			&created.UserID,
			&created.Type,
			&created.Quantity,
			&created.Note,
			&created.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert movement: %w", err)
		}

		return nil
	})
	if err != nil {
		return inventory.Movement{}, err
	}

	return created, nil
}

// ListMovements implements inventory.MaterialRepository.
func (r *materialRepositoryImpl) ListMovements(ctx context.Context, materialID string) ([]inventory.Movement, error) {
	q := querier(ctx, r.db)

	query := `
		SELECT mv.id, mv.material_id, mv.user_id, mv.type, mv.quantity, mv.note, mv.created_at,
			   m.name, u.name
		FROM material_movements mv
		JOIN materials m ON m.id = mv.material_id
		JOIN users u ON u.id = mv.user_id
		WHERE mv.material_id = $1
		ORDER BY mv.created_at DESC
	`

	rows, err := q.Query(ctx, query, materialID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []inventory.Movement
	for rows.Next() {
		var mv inventory.Movement
		if err := rows.Scan(
			&mv.ID,
			&mv.MaterialID,
			&mv.UserID,
			&mv.Type,
			&mv.Quantity,
			&mv.Note,
			&mv.CreatedAt,
			&mv.MaterialName,
			&mv.UserName,
		); err != nil {
			return nil, err
		}
		movements = append(movements, mv)
	}

	return movements, rows.Err()
}
