package models

// ReorderItem pairs an entity ID with its new display priority.
type ReorderItem struct {
	ID            string `json:"id" binding:"required"`
	OrderPriority int    `json:"order_priority"`
}

// ReorderRequest is the payload for bulk reorder endpoints.
type ReorderRequest struct {
	Items []ReorderItem `json:"items" binding:"required"`
}
