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

import "context"

// NewResolverFake returns a Resolver which always resolves the given address.
func NewResolverFake(address *Address) Resolver {
	return &resolverFake{address: address}
}

// NewFailingResolverFake returns a Resolver which always fails with the
// given error.
func NewFailingResolverFake(err error) Resolver {
	return &resolverFake{err: err}
}

type resolverFake struct {
	address *Address
	err     error
}

func (r *resolverFake) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*Address, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.address == nil {
		return nil, nil
	}
	address := *r.address
	return &address, nil
}
