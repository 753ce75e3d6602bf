package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/inventory"
	"github.com/google/uuid"
)

type InventoryServiceImpl struct {
	materialRepo inventory.MaterialRepository
}

func NewInventoryService(materialRepo inventory.MaterialRepository) inventory.InventoryService {
	return &InventoryServiceImpl{materialRepo: materialRepo}
}

// CreateMaterial implements inventory.InventoryService.
func (s *InventoryServiceImpl) CreateMaterial(ctx context.Context, req inventory.CreateMaterialRequest) (inventory.MaterialResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.MaterialResponse{}, err
	}

	material := inventory.Material{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Unit:     req.Unit,
		Stock:    req.Stock,
		MinStock: req.MinStock,
	}

	created, err := s.materialRepo.Create(ctx, material)
	if err != nil {
		return inventory.MaterialResponse{}, fmt.Errorf("failed to create material: %w", err)
	}

	return mapMaterialToResponse(created), nil
}

// GetMaterial implements inventory.InventoryService.
func (s *InventoryServiceImpl) GetMaterial(ctx context.Context, id string) (inventory.MaterialResponse, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		if err == inventory.ErrMaterialNotFound {
			return inventory.MaterialResponse{}, inventory.ErrMaterialNotFound
		}
		return inventory.MaterialResponse{}, fmt.Errorf("failed to get material: %w", err)
	}

	return mapMaterialToResponse(material), nil
}

// ListMaterials implements inventory.InventoryService.
func (s *InventoryServiceImpl) ListMaterials(ctx context.Context) (inventory.ListMaterialsResponse, error) {
	materials, err := s.materialRepo.List(ctx)
	if err != nil {
		return inventory.ListMaterialsResponse{}, fmt.Errorf("failed to list materials: %w", err)
	}

	responses := make([]inventory.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		responses = append(responses, mapMaterialToResponse(m))
	}

	return inventory.ListMaterialsResponse{
		TotalCount: len(responses),
		Materials:  responses,
	}, nil
}

// UpdateMaterial implements inventory.InventoryService.
func (s *InventoryServiceImpl) UpdateMaterial(ctx context.Context, id string, req inventory.UpdateMaterialRequest) (inventory.MaterialResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.MaterialResponse{}, err
	}

	updated, err := s.materialRepo.Update(ctx, id, req.Name, req.Unit, req.MinStock)
	if err != nil {
		if err == inventory.ErrMaterialNotFound {
			return inventory.MaterialResponse{}, inventory.ErrMaterialNotFound
		}
		return inventory.MaterialResponse{}, fmt.Errorf("failed to update material: %w", err)
	}

	return mapMaterialToResponse(updated), nil
}

// RegisterMovement implements inventory.InventoryService.
func (s *InventoryServiceImpl) RegisterMovement(ctx context.Context, req inventory.RegisterMovementRequest) (inventory.MovementResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.MovementResponse{}, err
	}

	movement := inventory.Movement{
		ID:         uuid.NewString(),
		MaterialID: req.MaterialID,
		UserID:     req.UserID,
		Type:       inventory.MovementType(req.Type),
		Quantity:   req.Quantity,
		Note:       req.Note,
	}

	created, err := s.materialRepo.RegisterMovement(ctx, movement)
	if err != nil {
		switch err {
		case inventory.ErrMaterialNotFound, inventory.ErrInsufficientStock:
			return inventory.MovementResponse{}, err
		}
		return inventory.MovementResponse{}, fmt.Errorf("failed to register movement: %w", err)
	}

	return mapMovementToResponse(created), nil
}

// ListMovements implements inventory.InventoryService.
func (s *InventoryServiceImpl) ListMovements(ctx context.Context, materialID string) (inventory.ListMovementsResponse, error) {
	// Material must exist; an empty history on a real material is not an error.
	if _, err := s.materialRepo.GetByID(ctx, materialID); err != nil {
		if err == inventory.ErrMaterialNotFound {
			return inventory.ListMovementsResponse{}, inventory.ErrMaterialNotFound
		}
		return inventory.ListMovementsResponse{}, fmt.Errorf("failed to get material: %w", err)
	}

	movements, err := s.materialRepo.ListMovements(ctx, materialID)
	if err != nil {
		return inventory.ListMovementsResponse{}, fmt.Errorf("failed to list movements: %w", err)
	}

	responses := make([]inventory.MovementResponse, 0, len(movements))
	for _, mv := range movements {
		responses = append(responses, mapMovementToResponse(mv))
	}

	return inventory.ListMovementsResponse{
		TotalCount: len(responses),
		Movements:  responses,
	}, nil
}

func mapMaterialToResponse(m inventory.Material) inventory.MaterialResponse {
	return inventory.MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Unit:         m.Unit,
		Stock:        m.Stock,
		MinStock:     m.MinStock,
		BelowMinimum: m.BelowMinimum(),
	}
}

func mapMovementToResponse(mv inventory.Movement) inventory.MovementResponse {
	resp := inventory.MovementResponse{
		ID:         mv.ID,
		MaterialID: mv.MaterialID,
		UserID:     mv.UserID,
		Type:       string(mv.Type),
		Quantity:   mv.Quantity,
		Note:       mv.Note,
		CreatedAt:  mv.CreatedAt.Format(time.RFC3339),
	}
	if mv.MaterialName != nil {
		resp.MaterialName = *mv.MaterialName
	}
	if mv.UserName != nil {
		resp.UserName = *mv.UserName
	}
	return resp
}
