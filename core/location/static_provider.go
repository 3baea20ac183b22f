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

import "time"

// DefaultLatitude and friends describe the static fallback position used
// when no real fix is obtainable, so marketplace search always has
// something to search around.
const (
	DefaultLatitude  = 18.5204
	DefaultLongitude = 73.8567
)

// DefaultAddress is the address of the static fallback position.
var DefaultAddress = Address{
	City:       "Pune",
	Region:     "Maharashtra",
	PostalCode: "411001",
}

// StaticProvider produces the fallback snapshot with a fixed coordinate.
type StaticProvider struct {
	latitude  float64
	longitude float64
	address   Address
}

// NewStaticProvider creates a StaticProvider with the given coordinate.
func NewStaticProvider(latitude, longitude float64, address Address) *StaticProvider {
	return &StaticProvider{
		latitude:  latitude,
		longitude: longitude,
		address:   address,
	}
}

// NewDefaultProvider creates a StaticProvider with the built-in coordinate.
func NewDefaultProvider() *StaticProvider {
	return NewStaticProvider(DefaultLatitude, DefaultLongitude, DefaultAddress)
}

// Snapshot returns a fallback snapshot acquired at the given time. It always
// succeeds, which keeps the acquisition round total.
func (p *StaticProvider) Snapshot(acquiredAt time.Time) Snapshot {
	address := p.address
	return Snapshot{
		Latitude:      p.latitude,
		Longitude:     p.longitude,
		AcquiredAt:    acquiredAt,
		Address:       &address,
		IsDefault:     true,
		SchemaVersion: CurrentSchemaVersion,
	}
}
