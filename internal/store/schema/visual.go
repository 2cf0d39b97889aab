package schema

import "github.com/lookaway/lookaway/internal/domain"

// Visual represents the visuals table - a single image or artwork
type Visual struct {
	Content
	// ImageURL points at the stored image
	ImageURL string `gorm:"column:image_url;not null;default:''"`

	// Allocations are the marshmallows this visual received
	Allocations []Allocation `gorm:"many2many:visual_allocations;joinForeignKey:EntityID;joinReferences:AllocationID"`
}

// TableName specifies the table name for the Visual model
func (Visual) TableName() string {
	return "visuals"
}

func (Visual) EntityType() domain.EntityType {
	return domain.EntityTypeVisual
}

func (v *Visual) GetAllocations() []Allocation {
	return v.Allocations
}
