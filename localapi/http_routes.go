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

// Package localapi exposes the location resolution service over a local
// REST API consumed by the marketplace and other in-app callers.
package localapi

import (
	"github.com/julienschmidt/httprouter"

	"github.com/powermesh/locator/core/location"
	"github.com/powermesh/locator/localapi/endpoints"
)

// NewAPIRouter creates the router with all local API endpoints registered
func NewAPIRouter(resolver location.Resolver) *httprouter.Router {
	router := httprouter.New()
	router.HandleMethodNotAllowed = true

	endpoints.AddRoutesForHealthCheck(router)
	endpoints.AddRoutesForLocation(router, resolver)

	return router
}
