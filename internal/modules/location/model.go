// README: Location state snapshot shared with the rest of the dashboard.
package location

import (
	"time"

	"cardash/internal/types"
)

// State is the best-known position of the vehicle. HasFix distinguishes a
// live GPS reading from the static home fallback.
type State struct {
	Coord     types.Coordinate `json:"coord"`
	Place     string           `json:"place"`
	Timezone  string           `json:"timezone"`
	HasFix    bool             `json:"hasFix"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
