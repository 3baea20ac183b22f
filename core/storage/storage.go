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

// Package storage declares the durable key-value capability consumed by the
// location cache.
package storage

import "errors"

// ErrNotFound is returned when no value is stored under the requested key.
var ErrNotFound = errors.New("value not found")

// KeyValueStorage allows storing JSON-encodable values by bucket and key.
type KeyValueStorage interface {
	SetValue(bucket string, key string, from interface{}) error
	GetValue(bucket string, key string, to interface{}) error
	DeleteValue(bucket string, key string) error
}
