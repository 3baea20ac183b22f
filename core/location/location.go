/*
 * Copyright (C) 2024 The "PowerMesh/locator" Authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package location produces a best-effort geographic position for the
// device. It layers a two-tier TTL cache over a single-flight acquisition
// round which degrades gracefully down to a static default coordinate.
package location

import (
	"context"
	"time"
)

// CurrentSchemaVersion is the persisted snapshot schema version. Snapshots
// stored with any other version are discarded on read.
const CurrentSchemaVersion = 1

// AppTopicLocationUpdate is the event bus topic published after every
// completed acquisition round.
const AppTopicLocationUpdate = "location-update"

// UpdateEvent is the payload published on AppTopicLocationUpdate.
type UpdateEvent struct {
	Snapshot Snapshot
}

// Address is a best-effort human readable position of a snapshot.
type Address struct {
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
}

// Snapshot represents a resolved geographic position.
type Snapshot struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// AcquiredAt is set once at creation and drives TTL checks.
	AcquiredAt time.Time `json:"acquired_at"`

	Address *Address `json:"address,omitempty"`

	// IsDefault marks a placeholder produced by the fallback location
	// rather than a real fix.
	IsDefault bool `json:"is_default"`

	SchemaVersion int `json:"schema_version"`
}

// Resolver is the public surface of the location resolution service.
type Resolver interface {
	// GetCurrentLocation returns the device position. It is total: on any
	// failure it degrades down to the static default location instead of
	// returning an error.
	GetCurrentLocation(ctx context.Context, forceRefresh bool) Snapshot

	// GetCachedLocation returns the cached snapshot without triggering
	// acquisition, or nil when nothing valid is cached.
	GetCachedLocation() *Snapshot

	// ClearCache drops both the in-memory and the durable cache tiers.
	ClearCache()
}
