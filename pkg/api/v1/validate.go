package v1

import (
	"errors"
	"fmt"
)

// Validate checks that the configuration describes a runnable query.
func (s *VisualizeSpec) Validate() error {
	if s.Package == "" {
		return errors.New("package is required")
	}
	if s.Repository == "" {
		return errors.New("repository is required")
	}
	if s.MaxDepth < 1 {
		return fmt.Errorf("max depth must be at least 1: %d", s.MaxDepth)
	}
	return nil
}
