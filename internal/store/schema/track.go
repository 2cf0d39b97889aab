package schema

import "github.com/lookaway/lookaway/internal/domain"

// Track represents the tracks table - a single piece of music
type Track struct {
	Content
	// DurationSeconds is the playing time
	DurationSeconds int `gorm:"column:duration_seconds;not null;default:0"`

	// Allocations are the marshmallows this track received
	Allocations []Allocation `gorm:"many2many:track_allocations;joinForeignKey:EntityID;joinReferences:AllocationID"`
}

// TableName specifies the table name for the Track model
func (Track) TableName() string {
	return "tracks"
}

func (Track) EntityType() domain.EntityType {
	return domain.EntityTypeTrack
}

func (t *Track) GetAllocations() []Allocation {
	return t.Allocations
}
