// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package artist implements the artist foundation service.

It owns the Artist entity, the rules an artist must satisfy before it is
stored, the storage gateway contract with its PostgreSQL and Redis adapters,
and the HTTP handler.

# Error Tiers

Every failure leaving [Service] is one of two tiers:

  - [*ValidationError]: the caller sent something wrong (logged at error).
  - [*DependencyError]: storage failed (logged at critical).
*/
package artist

import (
	"time"

	"github.com/google/uuid"

	"github.com/taibuivan/artgallery/internal/core/user"
)

// Artist is a person whose work is exhibited by the gallery.
type Artist struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"first_name"`
	MiddleName    string    `json:"middle_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contact_number"`
	Status        Status    `json:"status"`
	CreatedBy     uuid.UUID `json:"created_by"`
	UpdatedBy     uuid.UUID `json:"updated_by"`
	CreatedDate   time.Time `json:"created_date"`
	UpdatedDate   time.Time `json:"updated_date"`

	// Weak references resolved from CreatedBy/UpdatedBy on read. The service never sets them.
	CreatedByUser *user.User `json:"created_by_user,omitempty"`
	UpdatedByUser *user.User `json:"updated_by_user,omitempty"`
}

// # Status

// Status is the lifecycle state of an artist record.
type Status int

const (
	// StatusUnknown is the zero value and is never a valid state.
	StatusUnknown Status = iota
	StatusActive
	StatusInactive
)

var statusNames = map[Status]string{
	StatusActive:   "Active",
	StatusInactive: "InActive",
}

// String returns the wire name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognised names
// decode to [StatusUnknown] so that validation, not decoding, rejects them.
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	*s = StatusUnknown
	return nil
}

// # Field Identifiers

// Field labels used as violation keys.
const (
	FieldID            = "Id"
	FieldFirstName     = "FirstName"
	FieldLastName      = "LastName"
	FieldEmail         = "Email"
	FieldContactNumber = "ContactNumber"
	FieldStatus        = "Status"
	FieldCreatedBy     = "CreatedBy"
	FieldUpdatedBy     = "UpdatedBy"
	FieldCreatedDate   = "CreatedDate"
	FieldUpdatedDate   = "UpdatedDate"
)
