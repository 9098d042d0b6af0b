// README: Saved and recently used destinations. Favorites live in Postgres;
// recents are a capped Redis list fed by the navigation session.
package places

import (
	"errors"
	"time"

	"cardash/internal/types"
)

var ErrNotFound = errors.New("favorite not found")

// Favorite is a driver-saved destination (home, work, the usual charger).
type Favorite struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Address   string           `json:"address"`
	Coord     types.Coordinate `json:"coord"`
	Icon      string           `json:"icon"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Recent is a destination the session actually routed to.
type Recent struct {
	Name     string           `json:"name"`
	Coord    types.Coordinate `json:"coord"`
	RoutedAt time.Time        `json:"routedAt"`
}
