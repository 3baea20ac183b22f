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

package location

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog/log"

	"github.com/powermesh/locator/core/geocode"
	"github.com/powermesh/locator/core/gps"
)

// fallbackChain orders acquisition strategies from cheapest to most
// expensive and returns the first usable snapshot. It never fails: every
// error class is recovered by moving on to the next strategy, bottoming out
// at the static fallback location.
type fallbackChain struct {
	provider gps.Provider
	geocoder geocode.Resolver
	fallback *StaticProvider
	clock    clock.Clock

	fixTimeout      time.Duration
	lastKnownMaxAge time.Duration
}

// Acquire runs one acquisition round:
//  1. location services globally disabled -> fallback
//  2. permission not granted -> fallback
//  3. platform's last known fix, if younger than the cache TTL
//  4. fresh fix raced against the fix timeout
//  5. fallback location
func (c *fallbackChain) Acquire(ctx context.Context) Snapshot {
	enabled, err := c.provider.ServicesEnabled()
	if err != nil {
		log.Warn().Err(err).Msg("Could not query location services state")
		return c.fallback.Snapshot(c.clock.Now())
	}
	if !enabled {
		log.Debug().Msg("Location services disabled, using fallback location")
		return c.fallback.Snapshot(c.clock.Now())
	}

	permission, err := c.provider.RequestPermission()
	if err != nil {
		log.Warn().Err(err).Msg("Location permission request failed")
		return c.fallback.Snapshot(c.clock.Now())
	}
	if permission != gps.PermissionGranted {
		log.Debug().Msg("Location permission denied, using fallback location")
		return c.fallback.Snapshot(c.clock.Now())
	}

	if snapshot, ok := c.lastKnown(ctx); ok {
		return snapshot
	}
	if snapshot, ok := c.freshFix(ctx); ok {
		return snapshot
	}
	return c.fallback.Snapshot(c.clock.Now())
}

// lastKnown is the cheapest real-data path: the platform's cached fix,
// accepted only while its own timestamp is within the TTL window.
func (c *fallbackChain) lastKnown(ctx context.Context) (Snapshot, bool) {
	fix, err := c.provider.LastKnownFix()
	if err != nil {
		log.Warn().Err(err).Msg("Could not read last known fix")
		return Snapshot{}, false
	}
	if fix == nil {
		return Snapshot{}, false
	}
	if c.clock.Now().Sub(fix.Timestamp) >= c.lastKnownMaxAge {
		log.Debug().Msgf("Last known fix from %s is too old", fix.Timestamp)
		return Snapshot{}, false
	}

	log.Debug().Msgf("Using last known fix %.4f,%.4f", fix.Latitude, fix.Longitude)
	return c.enrich(ctx, c.snapshotFromFix(*fix)), true
}

func (c *fallbackChain) freshFix(ctx context.Context) (Snapshot, bool) {
	fixCtx, cancel := context.WithTimeout(ctx, c.fixTimeout)
	defer cancel()

	fix, err := c.provider.CurrentFix(fixCtx, gps.AccuracyHigh)
	switch {
	case fixCtx.Err() != nil:
		log.Warn().Msgf("No fix within %s, giving up on fresh position", c.fixTimeout)
		return Snapshot{}, false
	case err != nil:
		log.Warn().Err(err).Msg("Positioning platform failed to produce a fix")
		return Snapshot{}, false
	}

	log.Debug().Msgf("Acquired fresh fix %.4f,%.4f", fix.Latitude, fix.Longitude)
	return c.enrich(ctx, c.snapshotFromFix(fix)), true
}

// enrich attaches a reverse-geocoded address. Enrichment is best-effort: a
// failure never demotes or discards the fix.
func (c *fallbackChain) enrich(ctx context.Context, snapshot Snapshot) Snapshot {
	address, err := c.geocoder.ReverseGeocode(ctx, snapshot.Latitude, snapshot.Longitude)
	if err != nil {
		log.Warn().Err(err).Msg("Reverse geocoding failed, returning snapshot without address")
		return snapshot
	}
	if address != nil {
		snapshot.Address = &Address{
			City:       address.City,
			Region:     address.Region,
			PostalCode: address.PostalCode,
		}
	}
	return snapshot
}

func (c *fallbackChain) snapshotFromFix(fix gps.Fix) Snapshot {
	acquiredAt := fix.Timestamp
	if acquiredAt.IsZero() {
		acquiredAt = c.clock.Now()
	}
	return Snapshot{
		Latitude:      fix.Latitude,
		Longitude:     fix.Longitude,
		AcquiredAt:    acquiredAt,
		SchemaVersion: CurrentSchemaVersion,
	}
}
