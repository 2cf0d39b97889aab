package schema

import "github.com/lookaway/lookaway/internal/domain"

// Article represents the articles table - long-form written content
type Article struct {
	Content
	// Body is the article text
	Body string `gorm:"column:body;not null;default:''"`

	// Allocations are the marshmallows this article received
	Allocations []Allocation `gorm:"many2many:article_allocations;joinForeignKey:EntityID;joinReferences:AllocationID"`
}

// TableName specifies the table name for the Article model
func (Article) TableName() string {
	return "articles"
}

func (Article) EntityType() domain.EntityType {
	return domain.EntityTypeArticle
}

func (a *Article) GetAllocations() []Allocation {
	return a.Allocations
}
