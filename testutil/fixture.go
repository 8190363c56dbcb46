// Package testutil provides the shared showroom fixture and assertion
// helpers used across the engine's test suites.
package testutil

import (
	"testing"

	"github.com/quotienthq/quotient/types"
)

// Stable fixture row IDs, referenced by tests that need to target a
// specific row across snapshots.
const (
	GroundFloorID = "row-ground-floor"
	LivingRoomID  = "row-living-room"
	TVUnitID      = "row-tv-unit"
	SofaID        = "row-sofa"
	KitchenID     = "row-kitchen"
	CabinetsID    = "row-cabinets"
	FirstFloorID  = "row-first-floor"
	BedroomID     = "row-bedroom"
	WardrobeID    = "row-wardrobe"
	CurtainsID    = "row-curtains"
)

// ShowroomDocument builds the canonical two-floor quotation used by
// tests: Ground Floor (Living Room: TV Unit, Sofa; Kitchen: Cabinets),
// First Floor (Bedroom: Wardrobe), plus one additional item (Curtains).
// Row IDs are fixed so diffs across edited copies line up.
func ShowroomDocument() types.Document {
	doc := types.NewDocument()
	doc.Client = types.Client{Name: "Mehta Residence", Phone: "9800000000"}
	doc.Meta = types.Meta{Date: "2025-04-01", Number: "Q-1042"}

	doc.MainItems = []types.Row{
		{ID: GroundFloorID, Kind: types.KindFloor, Name: "Ground Floor"},
		{ID: LivingRoomID, Kind: types.KindRoom, Name: "Living Room"},
		item(TVUnitID, "TV Unit", 80000, 1),
		item(SofaID, "Sofa", 45000, 1),
		{ID: KitchenID, Kind: types.KindRoom, Name: "Kitchen"},
		item(CabinetsID, "Cabinets", 120000, 1),
		{ID: FirstFloorID, Kind: types.KindFloor, Name: "First Floor"},
		{ID: BedroomID, Kind: types.KindRoom, Name: "Bedroom"},
		item(WardrobeID, "Wardrobe", 95000, 1),
	}
	doc.AdditionalItems = []types.Row{
		item(CurtainsID, "Curtains", 12000, 2),
	}
	return doc
}

func item(id, name string, rate, qty float64) types.Row {
	r := types.Row{
		ID:   id,
		Kind: types.KindItem,
		Name: name,
		Rate: types.Float(rate),
		Qty:  types.Float(qty),
	}
	r.Recalculate()
	return r
}

// FindRow returns a pointer into rows for the row with the given id,
// failing the test if absent.
func FindRow(t *testing.T, rows []types.Row, id string) *types.Row {
	t.Helper()
	for i := range rows {
		if rows[i].ID == id {
			return &rows[i]
		}
	}
	t.Fatalf("row %s not found in fixture", id)
	return nil
}
