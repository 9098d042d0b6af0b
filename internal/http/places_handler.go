// README: Saved-places handlers: favorites CRUD and recent destinations.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardash/internal/modules/places"
	"cardash/internal/types"
)

type PlacesHandler struct {
	favorites *places.Store
	recents   *places.RecentStore
}

func NewPlacesHandler(favorites *places.Store, recents *places.RecentStore) *PlacesHandler {
	return &PlacesHandler{favorites: favorites, recents: recents}
}

type createFavoriteReq struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Icon    string  `json:"icon"`
}

func (h *PlacesHandler) CreateFavorite(c *gin.Context) {
	var req createFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	coord := types.Coordinate{Lat: req.Lat, Lng: req.Lng}
	if req.Name == "" || !coord.Valid() {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}

	fav := &places.Favorite{
		Name:    req.Name,
		Address: req.Address,
		Coord:   coord,
		Icon:    req.Icon,
	}
	if err := h.favorites.Create(c.Request.Context(), fav); err != nil {
		writePlacesError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, fav)
}

func (h *PlacesHandler) ListFavorites(c *gin.Context) {
	list, err := h.favorites.List(c.Request.Context())
	if err != nil {
		writePlacesError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"favorites": list})
}

func (h *PlacesHandler) DeleteFavorite(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing favorite id")
		return
	}
	if err := h.favorites.Delete(c.Request.Context(), id); err != nil {
		writePlacesError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlacesHandler) ListRecents(c *gin.Context) {
	list, err := h.recents.List(c.Request.Context())
	if err != nil {
		writePlacesError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"recents": list})
}
