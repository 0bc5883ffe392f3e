/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

var ErrInvalidDateTime = errors.New("invalid date-time: expected RFC3339 or yyyy-MM-dd'T'HH:mm:ss.SSSZ")

// ErrInvalidUsername is what the service considers a malformed username.
var ErrInvalidUsername = errors.New("invalid username: must consist of alphanumeric characters, '.', '_' or '-'")

var usernameValidationRegex = regexp.MustCompile("^[A-Za-z0-9._-]+$")

// DateTimeLayout is the layout the service emits, e.g. 2024-01-01T10:00:00.000+0000.
const DateTimeLayout = "2006-01-02T15:04:05.000-0700"

// DateTime accepts both the service's own layout and RFC3339, and always
// marshals in the service's layout.  Values are normalised to UTC so that
// decoded copies compare equal.  The JSON methods are spelled out because the
// embedded time.Time would otherwise provide RFC3339 ones.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) *DateTime {
	return &DateTime{Time: t.UTC().Truncate(time.Millisecond)}
}

func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.UTC().Format(DateTimeLayout)), nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(DateTimeLayout))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDateTime, string(data))
	}

	return d.UnmarshalText([]byte(text))
}

func (d *DateTime) UnmarshalText(text []byte) error {
	for _, layout := range []string{DateTimeLayout, time.RFC3339Nano} {
		t, err := time.Parse(layout, string(text))
		if err == nil {
			*d = DateTime{Time: t.UTC()}

			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidDateTime, string(text))
}

// Valid reports whether the status is one the service defines.
func (s PetStatus) Valid() bool {
	switch s {
	case PetStatusAvailable, PetStatusPending, PetStatusSold:
		return true
	}

	return false
}

// Valid reports whether the status is one the service defines.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusApproved, OrderStatusDelivered:
		return true
	}

	return false
}

// ValidateUsername applies the service's username rule.  Clients never call
// this before sending, the service is the authority.
func ValidateUsername(username string) error {
	if !usernameValidationRegex.MatchString(username) {
		return ErrInvalidUsername
	}

	return nil
}
