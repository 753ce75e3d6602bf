package inventory

import (
	"github.com/StevenNunez/Bodega-FerroActiva-By-Steven-sub002/internal/pkg/validator"
)

type CreateMaterialRequest struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Stock    float64 `json:"stock"`
	MinStock float64 `json:"min_stock"`
}

func (r *CreateMaterialRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.Unit) {
		errs = append(errs, validator.ValidationError{
			Field:   "unit",
			Message: "unit is required",
		})
	}
	if r.Stock < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "stock",
			Message: "stock must not be negative",
		})
	}
	if r.MinStock < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_stock",
			Message: "min_stock must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMaterialRequest struct {
	Name     *string  `json:"name"`
	Unit     *string  `json:"unit"`
	MinStock *float64 `json:"min_stock"`
}

func (r *UpdateMaterialRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Unit != nil && validator.IsEmpty(*r.Unit) {
		errs = append(errs, validator.ValidationError{
			Field:   "unit",
			Message: "unit must not be empty",
		})
	}
	if r.MinStock != nil && *r.MinStock < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_stock",
			Message: "min_stock must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RegisterMovementRequest struct {
	MaterialID string  `json:"material_id"`
	UserID     string  `json:"user_id"`
	Type       string  `json:"type"`
	Quantity   float64 `json:"quantity"`
	Note       *string `json:"note"`
}

func (r *RegisterMovementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MaterialID) {
		errs = append(errs, validator.ValidationError{
			Field:   "material_id",
			Message: "material_id is required",
		})
	}
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if !validator.IsInSlice(r.Type, MovementTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be 'in' or 'out'",
		})
	}
	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MaterialResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Stock        float64 `json:"stock"`
	MinStock     float64 `json:"min_stock"`
	BelowMinimum bool    `json:"below_minimum"`
}

type ListMaterialsResponse struct {
	TotalCount int                `json:"total_count"`
	Materials  []MaterialResponse `json:"materials"`
}

type MovementResponse struct {
	ID           string  `json:"id"`
	MaterialID   string  `json:"material_id"`
	MaterialName string  `json:"material_name,omitempty"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name,omitempty"`
	Type         string  `json:"type"`
	Quantity     float64 `json:"quantity"`
	Note         *string `json:"note,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type ListMovementsResponse struct {
	TotalCount int                `json:"total_count"`
	Movements  []MovementResponse `json:"movements"`
}
