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

package endpoints

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"

	"github.com/powermesh/locator/core/location"
)

type resolverFake struct {
	snapshot     location.Snapshot
	cached       *location.Snapshot
	forceRefresh bool
	cleared      bool
}

func (r *resolverFake) GetCurrentLocation(ctx context.Context, forceRefresh bool) location.Snapshot {
	r.forceRefresh = forceRefresh
	return r.snapshot
}

func (r *resolverFake) GetCachedLocation() *location.Snapshot {
	return r.cached
}

func (r *resolverFake) ClearCache() {
	r.cleared = true
}

func TestGetLocationReturnsSnapshot(t *testing.T) {
	resolver := &resolverFake{
		snapshot: location.Snapshot{
			Latitude:      18.52,
			Longitude:     73.85,
			AcquiredAt:    time.Unix(0, 0).UTC(),
			SchemaVersion: 1,
		},
	}
	endpoint := NewLocationEndpoint(resolver)

	req := httptest.NewRequest(http.MethodGet, "/location", nil)
	resp := httptest.NewRecorder()
	endpoint.GetLocation(resp, req, httprouter.Params{})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, resolver.forceRefresh)
	assert.JSONEq(
		t,
		`{
			"latitude": 18.52,
			"longitude": 73.85,
			"acquired_at": "1970-01-01T00:00:00Z",
			"is_default": false,
			"schema_version": 1
		}`,
		resp.Body.String(),
	)
}

func TestGetLocationHonorsRefreshParam(t *testing.T) {
	resolver := &resolverFake{}
	endpoint := NewLocationEndpoint(resolver)

	req := httptest.NewRequest(http.MethodGet, "/location?refresh=true", nil)
	resp := httptest.NewRecorder()
	endpoint.GetLocation(resp, req, httprouter.Params{})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, resolver.forceRefresh)
}

func TestGetCachedLocationMissReturns404(t *testing.T) {
	endpoint := NewLocationEndpoint(&resolverFake{})

	req := httptest.NewRequest(http.MethodGet, "/location/cached", nil)
	resp := httptest.NewRecorder()
	endpoint.GetCachedLocation(resp, req, httprouter.Params{})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"message": "No location cached"}`, resp.Body.String())
}

func TestGetCachedLocationHit(t *testing.T) {
	cached := location.Snapshot{Latitude: 18.52, Longitude: 73.85, SchemaVersion: 1}
	endpoint := NewLocationEndpoint(&resolverFake{cached: &cached})

	req := httptest.NewRequest(http.MethodGet, "/location/cached", nil)
	resp := httptest.NewRecorder()
	endpoint.GetCachedLocation(resp, req, httprouter.Params{})

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestClearCache(t *testing.T) {
	resolver := &resolverFake{}
	endpoint := NewLocationEndpoint(resolver)

	req := httptest.NewRequest(http.MethodDelete, "/location/cache", nil)
	resp := httptest.NewRecorder()
	endpoint.ClearCache(resp, req, httprouter.Params{})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.True(t, resolver.cleared)
}
