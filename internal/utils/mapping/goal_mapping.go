package mapping

import (
	"github.com/fintrack/fintrack_backend/internal/core/domain"
	"github.com/fintrack/fintrack_backend/internal/models"
)

// ToModelGoal converts a domain Goal to a model Goal
func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:       d.GoalID,
		UserID:       d.UserID,
		Name:         d.Name,
		TargetAmount: d.TargetAmount,
		SavedAmount:  d.SavedAmount,
		DueDate:      d.DueDate,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainGoal converts a model Goal to a domain Goal
func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:       m.GoalID,
		UserID:       m.UserID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		SavedAmount:  m.SavedAmount,
		DueDate:      m.DueDate,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainGoalSlice converts a slice of model Goals to a slice of domain Goals
func ToDomainGoalSlice(ms []models.Goal) []domain.Goal {
	ds := make([]domain.Goal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGoal(m)
	}
	return ds
}
