package dto

import (
	"time"

	"github.com/tripflow/tripflow_backend/internal/core/domain"
)

// SaveJournalEntryRequest is the payload for saving a step's journal entry.
// Content is the serialized block list; the server treats it as opaque text.
type SaveJournalEntryRequest struct {
	Type      string   `json:"type" binding:"required,oneof=text photo audio"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
	FilePath  *string  `json:"file_path"`
	EntryDate *string  `json:"entry_date" binding:"omitempty,datetime=2006-01-02"`
}

// JournalEntryResponse is the API shape of a journal entry.
type JournalEntryResponse struct {
	ID        int64     `json:"id"`
	StepID    int64     `json:"step_id"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Images    []string  `json:"images,omitempty"`
	FilePath  *string   `json:"file_path,omitempty"`
	EntryDate *string   `json:"entry_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToJournalEntryResponse maps a domain journal entry to its API shape.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		ID:        e.ID,
		StepID:    e.StepID,
		Type:      e.Type,
		Content:   e.Content,
		Images:    e.Images,
		FilePath:  e.FilePath,
		EntryDate: e.EntryDate,
		CreatedAt: e.CreatedAt,
	}
}
