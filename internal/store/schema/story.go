package schema

import "github.com/lookaway/lookaway/internal/domain"

// Story represents the stories table - fiction published in chapters
type Story struct {
	Content
	// Chapter is the position of this entry within its series
	Chapter int `gorm:"column:chapter;not null;default:1"`

	// Allocations are the marshmallows this story received
	Allocations []Allocation `gorm:"many2many:story_allocations;joinForeignKey:EntityID;joinReferences:AllocationID"`
}

// TableName specifies the table name for the Story model
func (Story) TableName() string {
	return "stories"
}

func (Story) EntityType() domain.EntityType {
	return domain.EntityTypeStory
}

func (s *Story) GetAllocations() []Allocation {
	return s.Allocations
}
