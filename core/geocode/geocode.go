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

// Package geocode provides reverse geocoding of coordinates into
// human-readable addresses.
package geocode

import "context"

// Address is a reverse-geocoded postal address.
type Address struct {
	City       string
	Region     string
	PostalCode string
}

// Resolver resolves a coordinate into an address. A nil address with a nil
// error means the provider had no result for the coordinate.
type Resolver interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (*Address, error)
}
