// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"time"

	"github.com/google/uuid"

	"github.com/taibuivan/artgallery/internal/platform/validate"
)

// recencyWindow is how far CreatedDate may drift from the clock, either way.
const recencyWindow = time.Minute

// Violation messages.
const (
	messageIDRequired           = "Id is required."
	messageTextRequired         = "Text is required."
	messageTextInvalid          = "Text is invalid."
	messageValueInvalid         = "Value is invalid."
	messageDateRequired         = "Date is required."
	messageDateNotRecent        = "Date is not recent."
	messageIDNotSameUpdatedBy   = "Id is not same as " + FieldUpdatedBy + "."
	messageDateNotSameUpdatedAt = "Date is not same as " + FieldUpdatedDate + "."
)

// validateArtistOnAdd checks every rule an artist must satisfy before it is
// inserted. The clock is read exactly once, and only for a non-nil artist.
func (service *Service) validateArtistOnAdd(artist *Artist) error {
	if artist == nil {
		return ErrNullArtist
	}

	violations := validate.Check(
		validate.Rule{Field: FieldID, Condition: isMissingID(artist.ID), Message: messageIDRequired},
		validate.Rule{Field: FieldFirstName, Condition: isBlank(artist.FirstName), Message: messageTextRequired},
		validate.Rule{Field: FieldLastName, Condition: isBlank(artist.LastName), Message: messageTextRequired},
		validate.Rule{Field: FieldEmail, Condition: isInvalidEmail(artist.Email), Message: messageTextInvalid},
		validate.Rule{Field: FieldContactNumber, Condition: isInvalidContactNumber(artist.ContactNumber), Message: messageValueInvalid},
		validate.Rule{Field: FieldStatus, Condition: isInactive(artist.Status), Message: messageValueInvalid},
		validate.Rule{Field: FieldCreatedBy, Condition: isMissingID(artist.CreatedBy), Message: messageIDRequired},
		validate.Rule{Field: FieldUpdatedBy, Condition: isMissingID(artist.UpdatedBy), Message: messageIDRequired},
		validate.Rule{Field: FieldCreatedDate, Condition: isMissingDate(artist.CreatedDate), Message: messageDateRequired},
		validate.Rule{Field: FieldUpdatedDate, Condition: isMissingDate(artist.UpdatedDate), Message: messageDateRequired},

		validate.Rule{Field: FieldCreatedBy, Condition: isNotSameID(artist.CreatedBy, artist.UpdatedBy), Message: messageIDNotSameUpdatedBy},
		validate.Rule{Field: FieldCreatedDate, Condition: isNotSameDate(artist.CreatedDate, artist.UpdatedDate), Message: messageDateNotSameUpdatedAt},

		validate.Rule{Field: FieldCreatedDate, Condition: service.isNotRecent(artist.CreatedDate), Message: messageDateNotRecent},
	)

	if !violations.Empty() {
		return &InvalidArtistError{Violations: violations}
	}
	return nil
}

// validateArtistID checks the id supplied to a lookup.
func validateArtistID(id uuid.UUID) error {
	violations := validate.Check(
		validate.Rule{Field: FieldID, Condition: isMissingID(id), Message: messageIDRequired},
	)

	if !violations.Empty() {
		return &InvalidArtistError{Violations: violations}
	}
	return nil
}

// # Conditions

func isMissingID(id uuid.UUID) func() bool {
	return func() bool { return id == uuid.Nil }
}

func isBlank(text string) func() bool {
	return func() bool { return validate.IsBlank(text) }
}

// Email and contact number are nullable in storage but an empty value is
// still rejected here.
func isInvalidEmail(email string) func() bool {
	return func() bool { return validate.IsBlank(email) || !validate.IsEmail(email) }
}

func isInvalidContactNumber(number string) func() bool {
	return func() bool { return validate.IsBlank(number) || !validate.IsContactNumber(number) }
}

func isInactive(status Status) func() bool {
	return func() bool { return status != StatusActive }
}

func isMissingDate(date time.Time) func() bool {
	return func() bool { return date.IsZero() }
}

func isNotSameID(first, second uuid.UUID) func() bool {
	return func() bool { return first != second }
}

func isNotSameDate(first, second time.Time) func() bool {
	return func() bool { return !first.Equal(second) }
}

func (service *Service) isNotRecent(date time.Time) func() bool {
	return func() bool {
		difference := service.clock.Now().Sub(date)
		return difference > recencyWindow || difference < -recencyWindow
	}
}
