// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"
	"time"
)

// Repository defines the data access contract.
type Repository interface {
	// ListUpcoming returns up to limit events starting at or after from, soonest first.
	ListUpcoming(context context.Context, from time.Time, limit int) ([]Event, error)
}
