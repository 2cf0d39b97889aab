package schema

import "github.com/lookaway/lookaway/internal/domain"

// Post represents the posts table - a short status update
type Post struct {
	Content
	// Text is the post body
	Text string `gorm:"column:text;not null;default:''"`

	// Allocations are the marshmallows this post received
	Allocations []Allocation `gorm:"many2many:post_allocations;joinForeignKey:EntityID;joinReferences:AllocationID"`
}

// TableName specifies the table name for the Post model
func (Post) TableName() string {
	return "posts"
}

func (Post) EntityType() domain.EntityType {
	return domain.EntityTypePost
}

func (p *Post) GetAllocations() []Allocation {
	return p.Allocations
}
