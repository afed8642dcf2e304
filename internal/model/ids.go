package model

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDFunc produces unique identifiers for groups and items.
type IDFunc func() string

// UUIDs is the production generator.
func UUIDs() IDFunc { return uuid.NewString }

// Sequence returns a deterministic generator yielding prefix-1, prefix-2, ...
func Sequence(prefix string) IDFunc {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
