// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import "context"

// Repository defines the data access contract.
type Repository interface {
	Insert(context context.Context, message *Message) error
}
