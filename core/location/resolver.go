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
	"golang.org/x/sync/singleflight"

	"github.com/powermesh/locator/core/geocode"
	"github.com/powermesh/locator/core/gps"
	"github.com/powermesh/locator/core/storage"
	"github.com/powermesh/locator/eventbus"
)

const acquisitionFlightKey = "acquisition"

// Options tune the resolver's cache and acquisition timing.
type Options struct {
	// CacheTTL is the maximum age at which a cached snapshot is still valid.
	CacheTTL time.Duration
	// FixTimeout bounds a fresh platform fix request.
	FixTimeout time.Duration
	// FollowerWaitBound bounds how long a follower waits on an in-flight
	// acquisition before settling for the cache. It is deliberately longer
	// than FixTimeout so a healthy leader always finishes first.
	FollowerWaitBound time.Duration
}

// DefaultOptions returns the production timing configuration.
func DefaultOptions() Options {
	return Options{
		CacheTTL:          5 * time.Minute,
		FixTimeout:        15 * time.Second,
		FollowerWaitBound: 20 * time.Second,
	}
}

type resolver struct {
	cache    *Cache
	chain    *fallbackChain
	fallback *StaticProvider
	bus      eventbus.Publisher
	clock    clock.Clock
	options  Options

	flight singleflight.Group
}

// NewResolver constructs the location resolution service.
func NewResolver(
	provider gps.Provider,
	geocoder geocode.Resolver,
	kv storage.KeyValueStorage,
	bus eventbus.Publisher,
	fallback *StaticProvider,
	options Options,
) Resolver {
	return newResolver(provider, geocoder, kv, bus, fallback, options, clock.New())
}

func newResolver(
	provider gps.Provider,
	geocoder geocode.Resolver,
	kv storage.KeyValueStorage,
	bus eventbus.Publisher,
	fallback *StaticProvider,
	options Options,
	clk clock.Clock,
) *resolver {
	return &resolver{
		cache: NewCache(kv, clk, options.CacheTTL),
		chain: &fallbackChain{
			provider:        provider,
			geocoder:        geocoder,
			fallback:        fallback,
			clock:           clk,
			fixTimeout:      options.FixTimeout,
			lastKnownMaxAge: options.CacheTTL,
		},
		fallback: fallback,
		bus:      bus,
		clock:    clk,
		options:  options,
	}
}

// GetCurrentLocation returns the device position, consulting the cache
// first unless a refresh is forced. Concurrent callers collapse into a
// single acquisition round: one leader runs the fallback chain, followers
// receive the leader's exact result.
func (r *resolver) GetCurrentLocation(ctx context.Context, forceRefresh bool) Snapshot {
	if !forceRefresh {
		if snapshot := r.cache.Get(); snapshot != nil {
			return *snapshot
		}
	}

	results := r.flight.DoChan(acquisitionFlightKey, func() (interface{}, error) {
		// The round is detached from any single caller: its timeout
		// discipline lives in the chain, and its result is shared.
		snapshot := r.chain.Acquire(context.Background())
		r.cache.Put(snapshot)
		r.bus.Publish(AppTopicLocationUpdate, UpdateEvent{Snapshot: snapshot})
		return snapshot, nil
	})

	select {
	case result := <-results:
		return result.Val.(Snapshot)
	case <-r.clock.After(r.options.FollowerWaitBound):
		// The leader's completion signal is overdue. Settle for bounded
		// staleness instead of blocking forever; the round is left to the
		// leader, so nothing is cached here.
		log.Warn().Msgf("Acquisition still in flight after %s, serving best-available location", r.options.FollowerWaitBound)
		return r.bestAvailable()
	case <-ctx.Done():
		return r.bestAvailable()
	}
}

// GetCachedLocation returns the cached snapshot, nil on miss. It never
// triggers acquisition.
func (r *resolver) GetCachedLocation() *Snapshot {
	return r.cache.Get()
}

// ClearCache drops both cache tiers.
func (r *resolver) ClearCache() {
	r.cache.Clear()
}

func (r *resolver) bestAvailable() Snapshot {
	if snapshot := r.cache.Get(); snapshot != nil {
		return *snapshot
	}
	return r.fallback.Snapshot(r.clock.Now())
}
