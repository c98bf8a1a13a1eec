package sqlite

import (
	"fmt"

	"github.com/kurochkinivan/scan_analyzer/internal/domain"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("%w: failed to execute query: %w", domain.ErrStorage, err)
}

func scanRowError(err error) error {
	return fmt.Errorf("%w: failed to scan row: %w", domain.ErrStorage, err)
}

func txError(action string, err error) error {
	return fmt.Errorf("%w: failed to %s transaction: %w", domain.ErrStorage, action, err)
}
