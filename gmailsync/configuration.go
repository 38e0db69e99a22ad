// SPDX-License-Identifier: GPL-3.0-or-later
package gmailsync

import (
	"fmt"
	"time"
)

type ConfigFunc func(c *configuration) error

func DryRun() ConfigFunc {
	return func(c *configuration) error {
		c.DryRun = true

		return nil
	}
}

func After(after time.Time) ConfigFunc {
	return func(c *configuration) error {
		c.After = after
		return nil
	}
}

func BatchSize(size int) ConfigFunc {
	return func(c *configuration) error {
		if size <= 0 {
			return fmt.Errorf("BatchSize must be positive")
		}

		c.BatchSize = size
		return nil
	}
}

func BatchMaxBytes(maxBytes int64) ConfigFunc {
	return func(c *configuration) error {
		if maxBytes <= 0 {
			return fmt.Errorf("BatchMaxBytes must be positive")
		}

		c.BatchMaxBytes = maxBytes
		return nil
	}
}

type configuration struct {
	DryRun bool

	After time.Time

	BatchSize     int
	BatchMaxBytes int64
}
