// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package user holds the account reference that other records point at
// through their audit columns.
package user

import "github.com/google/uuid"

// User is the account that created or last updated a record.
type User struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
}
