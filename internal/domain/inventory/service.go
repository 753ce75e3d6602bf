package inventory

import "context"

type InventoryService interface {
	CreateMaterial(ctx context.Context, req CreateMaterialRequest) (MaterialResponse, error)
	GetMaterial(ctx context.Context, id string) (MaterialResponse, error)
	ListMaterials(ctx context.Context) (ListMaterialsResponse, error)
	UpdateMaterial(ctx context.Context, id string, req UpdateMaterialRequest) (MaterialResponse, error)
	RegisterMovement(ctx context.Context, req RegisterMovementRequest) (MovementResponse, error)
	ListMovements(ctx context.Context, materialID string) (ListMovementsResponse, error)
}
