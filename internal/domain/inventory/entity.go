package inventory

import "time"

type MovementType string

const (
	MovementTypeIn  MovementType = "in"  // material received into the bodega
	MovementTypeOut MovementType = "out" // material handed out to a crew
)

var MovementTypeValues = []string{
	string(MovementTypeIn),
	string(MovementTypeOut),
}

type Material struct {
	ID        string
	Name      string
	Unit      string // sacos, m3, unidades, ...
	Stock     float64
	MinStock  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelowMinimum reports whether stock has fallen under the reorder point.
func (m *Material) BelowMinimum() bool {
	return m.Stock < m.MinStock
}

type Movement struct {
	ID         string
	MaterialID string
	UserID     string
	Type       MovementType
	Quantity   float64
	Note       *string
	CreatedAt  time.Time

	// Joined for listings.
	MaterialName *string
	UserName     *string
}
