package models

// Item is an inventory item as reported by the backend.
type Item struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	Unit          string `json:"unit"`
	MinStockLevel int    `json:"minStockLevel"`
	Description   string `json:"description,omitempty"`
}

// LowStock reports whether the item is at or below its minimum stock level.
func (i Item) LowStock() bool {
	return i.Quantity <= i.MinStockLevel
}

// ItemRef is a point-in-time snapshot of an item taken when it was added
// to the cart. It is a value, not a live reference: stock may change after
// the snapshot and is only re-validated by the backend at submission.
type ItemRef struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	Quantity      int    `json:"quantity"`
	Unit          string `json:"unit"`
	MinStockLevel int    `json:"minStockLevel"`
}

// Ref snapshots the item for use in a cart line.
func (i Item) Ref() ItemRef {
	return ItemRef{
		ID:            i.ID,
		Name:          i.Name,
		SKU:           i.SKU,
		Quantity:      i.Quantity,
		Unit:          i.Unit,
		MinStockLevel: i.MinStockLevel,
	}
}

// CartLine is one (item, quantity, unit) entry pending submission.
type CartLine struct {
	Item     ItemRef `json:"item"`
	Quantity int     `json:"quantity"`
	Unit     string  `json:"unit"`
}
