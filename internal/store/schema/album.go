package schema

import (
	"time"

	"github.com/lookaway/lookaway/internal/domain"
)

// Album represents the albums table - a released collection of tracks
type Album struct {
	Content
	// ReleaseDate is the announced release date, if any
	ReleaseDate *time.Time `gorm:"column:release_date"`

	// Allocations are the marshmallows this album received
	Allocations []Allocation `gorm:"many2many:album_allocations;joinForeignKey:EntityID;joinReferences:AllocationID"`
}

// TableName specifies the table name for the Album model
func (Album) TableName() string {
	return "albums"
}

func (Album) EntityType() domain.EntityType {
	return domain.EntityTypeAlbum
}

func (a *Album) GetAllocations() []Allocation {
	return a.Allocations
}
