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
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog/log"

	"github.com/powermesh/locator/core/storage"
)

const (
	storageBucket = "location"
	storageKey    = "current"
)

// Cache keeps the latest snapshot in memory with a durable mirror in
// key-value storage. Both tiers apply the same TTL; the durable tier
// survives process restarts and is promoted into memory on read.
//
// TTL checks use wall-clock time. Clock skew or backward jumps are not
// corrected.
type Cache struct {
	storage storage.KeyValueStorage
	clock   clock.Clock
	ttl     time.Duration

	mu       sync.Mutex
	snapshot *Snapshot
}

// NewCache constructs a Cache over the given durable storage.
func NewCache(kv storage.KeyValueStorage, clk clock.Clock, ttl time.Duration) *Cache {
	return &Cache{
		storage: kv,
		clock:   clk,
		ttl:     ttl,
	}
}

// Get returns the cached snapshot if one is present and within TTL. A miss
// returns nil, never an error.
func (c *Cache) Get() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && c.fresh(*c.snapshot) {
		snapshot := *c.snapshot
		return &snapshot
	}

	var stored Snapshot
	err := c.storage.GetValue(storageBucket, storageKey, &stored)
	switch {
	case err == storage.ErrNotFound:
		return nil
	case err != nil:
		log.Warn().Err(err).Msg("Failed to read location from storage")
		return nil
	}

	if stored.SchemaVersion != CurrentSchemaVersion {
		log.Debug().Msgf("Discarding stored location with schema version %d", stored.SchemaVersion)
		return nil
	}
	if !c.fresh(stored) {
		return nil
	}

	c.snapshot = &stored
	snapshot := stored
	return &snapshot
}

// Put stores the snapshot in both tiers. A durable write failure is logged
// and swallowed: caching is an optimization, the snapshot stays usable
// in-process.
func (c *Cache) Put(snapshot Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := snapshot
	c.snapshot = &stored

	if err := c.storage.SetValue(storageBucket, storageKey, stored); err != nil {
		log.Warn().Err(err).Msg("Failed to persist location")
	}
}

// Clear drops both tiers together.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
	if err := c.storage.DeleteValue(storageBucket, storageKey); err != nil {
		log.Warn().Err(err).Msg("Failed to remove persisted location")
	}
}

func (c *Cache) fresh(snapshot Snapshot) bool {
	return c.clock.Now().Sub(snapshot.AcquiredAt) < c.ttl
}
