// Package palette is the catalogue of rooms a user can drop into a plan.
package palette

import (
	"strings"

	"github.com/matzehuels/floorsmith/pkg/errors"
	"github.com/matzehuels/floorsmith/pkg/plan"
)

// Item is a droppable room template. Sizes are in feet.
type Item struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Type  string  `json:"type"` // room type of the inserted room
	W     float64 `json:"w"`
	H     float64 `json:"h"`
}

var items = []Item{
	{Key: "living", Label: "Living Room", Type: plan.TypeLiving, W: 16, H: 12},
	{Key: "bedroom", Label: "Bedroom", Type: "bedroom", W: 12, H: 12},
	{Key: "master", Label: "Master Bedroom", Type: plan.TypeMasterBedroom, W: 14, H: 14},
	{Key: "guest", Label: "Guest Room", Type: plan.TypeGuestRoom, W: 12, H: 10},
	{Key: "kitchen", Label: "Kitchen", Type: plan.TypeKitchen, W: 10, H: 10},
	{Key: "bathroom", Label: "Bathroom", Type: plan.TypeBathroom, W: 8, H: 6},
	{Key: "office", Label: "Office", Type: plan.TypeOffice, W: 12, H: 10},
	{Key: "parking", Label: "Parking", Type: plan.ExtraParking, W: 16, H: 10},
	{Key: "garage", Label: "Garage", Type: plan.ExtraGarage, W: 16, H: 12},
	{Key: "garden", Label: "Garden", Type: plan.ExtraGarden, W: 20, H: 12},
	{Key: "balcony", Label: "Balcony", Type: plan.ExtraBalcony, W: 10, H: 6},
	{Key: "corridor", Label: "Corridor", Type: plan.TypeCorridor, W: 20, H: 4},
}

// Items returns the catalogue in display order.
func Items() []Item {
	return append([]Item(nil), items...)
}

// Lookup returns the item with the given key, matched case-insensitively.
func Lookup(key string) (Item, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if err := errors.ValidateRoomType(k); err != nil {
		return Item{}, err
	}
	for _, it := range items {
		if it.Key == k {
			return it, nil
		}
	}
	return Item{}, errors.New(errors.ErrCodeNotFound, "unknown palette item: %q", key)
}
