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

package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestResolverParsesAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "18.5204", r.URL.Query().Get("lat"))
		w.Write([]byte(`{"address":{"city":"Pune","state":"Maharashtra","postcode":"411001"}}`))
	}))
	defer server.Close()

	resolver := NewRestResolver(server.URL, time.Second)
	address, err := resolver.ReverseGeocode(context.Background(), 18.5204, 73.8567)

	require.NoError(t, err)
	require.NotNil(t, address)
	assert.Equal(t, "Pune", address.City)
	assert.Equal(t, "Maharashtra", address.Region)
	assert.Equal(t, "411001", address.PostalCode)
}

func TestRestResolverFallsBackToTown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{"town":"Lonavala","state":"Maharashtra"}}`))
	}))
	defer server.Close()

	resolver := NewRestResolver(server.URL, time.Second)
	address, err := resolver.ReverseGeocode(context.Background(), 18.75, 73.4)

	require.NoError(t, err)
	require.NotNil(t, address)
	assert.Equal(t, "Lonavala", address.City)
}

func TestRestResolverNoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address":{}}`))
	}))
	defer server.Close()

	resolver := NewRestResolver(server.URL, time.Second)
	address, err := resolver.ReverseGeocode(context.Background(), 0, 0)

	assert.NoError(t, err)
	assert.Nil(t, address)
}

func TestRestResolverRetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"address":{"city":"Pune"}}`))
	}))
	defer server.Close()

	resolver := NewRestResolver(server.URL, time.Second)
	address, err := resolver.ReverseGeocode(context.Background(), 18.52, 73.85)

	require.NoError(t, err)
	require.NotNil(t, address)
	assert.Equal(t, 2, calls)
}

func TestRestResolverReportsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	resolver := NewRestResolver(server.URL, time.Second)
	address, err := resolver.ReverseGeocode(context.Background(), 18.52, 73.85)

	assert.Error(t, err)
	assert.Nil(t, address)
}
