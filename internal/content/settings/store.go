// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListValues(context context.Context) (map[string]string, error)
}
