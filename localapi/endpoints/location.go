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
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/powermesh/locator/core/location"
	"github.com/powermesh/locator/localapi/utils"
)

// LocationEndpoint struct represents the /location resource and its subresources.
type LocationEndpoint struct {
	resolver location.Resolver
}

// NewLocationEndpoint creates and returns the location endpoint.
func NewLocationEndpoint(resolver location.Resolver) *LocationEndpoint {
	return &LocationEndpoint{resolver: resolver}
}

// GetLocation responds with the current location, acquiring one if needed.
// The response is always 200: absence of precision is reported through the
// is_default field, never as an error.
func (le *LocationEndpoint) GetLocation(writer http.ResponseWriter, request *http.Request, params httprouter.Params) {
	forceRefresh := request.URL.Query().Get("refresh") == "true"
	snapshot := le.resolver.GetCurrentLocation(request.Context(), forceRefresh)
	utils.WriteAsJSON(snapshot, writer)
}

// GetCachedLocation responds with the cached location without triggering
// acquisition.
func (le *LocationEndpoint) GetCachedLocation(writer http.ResponseWriter, request *http.Request, params httprouter.Params) {
	snapshot := le.resolver.GetCachedLocation()
	if snapshot == nil {
		utils.SendErrorMessage(writer, "No location cached", http.StatusNotFound)
		return
	}
	utils.WriteAsJSON(snapshot, writer)
}

// ClearCache removes the cached location from both cache tiers.
func (le *LocationEndpoint) ClearCache(writer http.ResponseWriter, request *http.Request, params httprouter.Params) {
	le.resolver.ClearCache()
	writer.WriteHeader(http.StatusNoContent)
}

// AddRoutesForLocation adds location routes to given router
func AddRoutesForLocation(router *httprouter.Router, resolver location.Resolver) {
	locationEndpoint := NewLocationEndpoint(resolver)
	router.GET("/location", locationEndpoint.GetLocation)
	router.GET("/location/cached", locationEndpoint.GetCachedLocation)
	router.DELETE("/location/cache", locationEndpoint.ClearCache)
}
