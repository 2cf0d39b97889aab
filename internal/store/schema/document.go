package schema

import "github.com/lookaway/lookaway/internal/domain"

// Document represents the documents table - reference and support material
type Document struct {
	Content
	// Number orders documents within the support index
	Number int `gorm:"column:number;not null;default:0"`

	// Allocations are the marshmallows this document received
	Allocations []Allocation `gorm:"many2many:document_allocations;joinForeignKey:EntityID;joinReferences:AllocationID"`
}

// TableName specifies the table name for the Document model
func (Document) TableName() string {
	return "documents"
}

func (Document) EntityType() domain.EntityType {
	return domain.EntityTypeDocument
}

func (d *Document) GetAllocations() []Allocation {
	return d.Allocations
}
