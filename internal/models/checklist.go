package models

// Checklist mirrors the checklists table.
type Checklist struct {
	ID        int64
	TripID    int64
	Title     string
	CreatedAt string
}

// ChecklistItem mirrors the checklist_items table. IsChecked is stored as
// an INTEGER (0/1).
type ChecklistItem struct {
	ID          int64
	ChecklistID int64
	Title       string
	IsChecked   int
	CreatedAt   string
}
