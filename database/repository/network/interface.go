package networkRepo

import (
	"context"

	"lawyerup/models"
)

// NetworkRepository defines persistence operations for the state-scoped
// community board.
type NetworkRepository interface {
	Insert(ctx context.Context, m *models.NetworkMessage) error
	// ListByState returns the state's feed, newest first.
	ListByState(ctx context.Context, state string, limit int64) ([]models.NetworkMessage, error)
}
