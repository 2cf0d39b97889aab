package schema

import "github.com/lookaway/lookaway/internal/domain"

// Gallery represents the galleries table - a curated set of visuals
type Gallery struct {
	Content
	// Description introduces the gallery
	Description string `gorm:"column:description;not null;default:''"`

	// Allocations are the marshmallows this gallery received
	Allocations []Allocation `gorm:"many2many:gallery_allocations;joinForeignKey:EntityID;joinReferences:AllocationID"`
}

// TableName specifies the table name for the Gallery model
func (Gallery) TableName() string {
	return "galleries"
}

func (Gallery) EntityType() domain.EntityType {
	return domain.EntityTypeGallery
}

func (g *Gallery) GetAllocations() []Allocation {
	return g.Allocations
}
