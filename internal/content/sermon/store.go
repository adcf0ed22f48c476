// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sermon

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListPublished(context context.Context) ([]Sermon, error)
}
