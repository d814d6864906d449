package services

import (
	"context"

	"github.com/fintrack/fintrack_backend/internal/core/domain"
)

// SummarySvcFacade defines the aggregation surface.
type SummarySvcFacade interface {
	// GetSummary aggregates the user's transactions over the resolved period.
	// A nil month summarizes all time; a nil startDay falls back to the user's
	// configured period start day.
	GetSummary(ctx context.Context, userID string, month *string, startDay *int) (*domain.Summary, error)
}
