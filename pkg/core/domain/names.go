package domain

import (
	"fmt"
	"strings"
)

// reserved table names a collection can never take.
var reservedNames = []string{"collection_info", "schema_migrations", "android_metadata"}

// ValidateCollectionName rejects names that cannot become a collection table.
func ValidateCollectionName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "sqlite_") {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	for _, r := range reservedNames {
		if lower == r {
			return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
		}
	}
	return nil
}
