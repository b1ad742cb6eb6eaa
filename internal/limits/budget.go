package limits

import (
	"errors"
	"fmt"
)

var ErrStackFull = errors.New("stack full")

// Depth caps how many values the operand stack may hold. A zero limit means
// unlimited.
type Depth struct {
	limit int
}

func NewDepth(limit int) *Depth {
	if limit < 0 {
		limit = 0
	}
	return &Depth{limit: limit}
}

func (d *Depth) Limit() int {
	if d == nil {
		return 0
	}
	return d.limit
}

func MaxDepthMessage(limit int) string {
	return fmt.Sprintf("stack full (limit %d)", limit)
}

type MaxDepthError struct {
	Limit int
}

func (e MaxDepthError) Error() string {
	return MaxDepthMessage(e.Limit)
}

func (e MaxDepthError) Unwrap() error {
	return ErrStackFull
}

// Check reports whether a stack currently holding used values can grow by n.
func (d *Depth) Check(used, n int) error {
	if d == nil || d.limit == 0 {
		return nil
	}
	if n <= 0 {
		return nil
	}
	if used+n > d.limit {
		return MaxDepthError{Limit: d.limit}
	}
	return nil
}
