package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/domain/inventory"
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InventoryHandler interface {
	CreateMaterial(w http.ResponseWriter, r *http.Request)
	GetMaterial(w http.ResponseWriter, r *http.Request)
	ListMaterials(w http.ResponseWriter, r *http.Request)
	UpdateMaterial(w http.ResponseWriter, r *http.Request)
	RegisterMovement(w http.ResponseWriter, r *http.Request)
	ListMovements(w http.ResponseWriter, r *http.Request)
}

type inventoryHandlerImpl struct {
	inventoryService inventory.InventoryService
}

func NewInventoryHandler(inventoryService inventory.InventoryService) InventoryHandler {
	return &inventoryHandlerImpl{
		inventoryService: inventoryService,
	}
}

// CreateMaterial implements InventoryHandler.
func (h *inventoryHandlerImpl) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req inventory.CreateMaterialRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateMaterial decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.CreateMaterial(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Material created", result)
}

// GetMaterial implements InventoryHandler.
func (h *inventoryHandlerImpl) GetMaterial(w http.ResponseWriter, r *http.Request) {
	materialID := chi.URLParam(r, "materialID")

	result, err := h.inventoryService.GetMaterial(r.Context(), materialID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMaterials implements InventoryHandler.
func (h *inventoryHandlerImpl) ListMaterials(w http.ResponseWriter, r *http.Request) {
	result, err := h.inventoryService.ListMaterials(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateMaterial implements InventoryHandler.
func (h *inventoryHandlerImpl) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	materialID := chi.URLParam(r, "materialID")

	var req inventory.UpdateMaterialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateMaterial decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.inventoryService.UpdateMaterial(r.Context(), materialID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// RegisterMovement implements InventoryHandler. The UserID on the movement
// is always the caller; handing out material on someone else's name is not
// a thing.
func (h *inventoryHandlerImpl) RegisterMovement(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	materialID := chi.URLParam(r, "materialID")

	var req inventory.RegisterMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RegisterMovement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.MaterialID = materialID
	req.UserID = userID

	result, err := h.inventoryService.RegisterMovement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Movement registered", result)
}

// ListMovements implements InventoryHandler.
func (h *inventoryHandlerImpl) ListMovements(w http.ResponseWriter, r *http.Request) {
	materialID := chi.URLParam(r, "materialID")

	result, err := h.inventoryService.ListMovements(r.Context(), materialID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
