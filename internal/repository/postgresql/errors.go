package postgresql

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

func collectRowsError(err error) error {
	return fmt.Errorf("%w: failed to collect rows: %w", domain.ErrStorage, err)
}
