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

// Package boltdbtest contains the utilities needed for boltdb testing
package boltdbtest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// CreateTempDir creates a temporary directory
func CreateTempDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "boltdbtest")
	assert.NoError(t, err)
	return dir
}

// RemoveTempDir removes a temporary directory
func RemoveTempDir(t *testing.T, dir string) {
	err := os.RemoveAll(dir)
	if err != nil {
		t.Logf("Could not remove temp dir: %v. Err: %v\n", dir, err)
	}
}
