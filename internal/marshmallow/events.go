package marshmallow

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// newEventID returns a time-ordered, unique event identifier
func newEventID(t time.Time) string {
	return ulid.MustNewDefault(t).String()
}
