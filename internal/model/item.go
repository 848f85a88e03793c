package model

// Item is the domain model for a todo entry.
// Identity is the pointer: two items with equal fields are still different entries.
type Item struct {
	Description string `json:"description"`
	Detail      string `json:"detail"`
	Deadline    Date   `json:"deadline"`
}

// NewItem builds an item from its three fields.
func NewItem(description, detail string, deadline Date) *Item {
	return &Item{Description: description, Detail: detail, Deadline: deadline}
}
