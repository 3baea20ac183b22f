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

package boltdb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/powermesh/locator/core/storage"
	"github.com/powermesh/locator/core/storage/boltdb/boltdbtest"
)

type record struct {
	Name string
	Age  int
}

func TestStorageRoundTrip(t *testing.T) {
	dir := boltdbtest.CreateTempDir(t)
	defer boltdbtest.RemoveTempDir(t, dir)

	db, err := NewStorage(dir)
	assert.NoError(t, err)
	defer db.Close()

	stored := record{Name: "test", Age: 42}
	err = db.SetValue("bucket", "key", stored)
	assert.NoError(t, err)

	var loaded record
	err = db.GetValue("bucket", "key", &loaded)
	assert.NoError(t, err)
	assert.Equal(t, stored, loaded)
}

func TestStorageMissingValue(t *testing.T) {
	dir := boltdbtest.CreateTempDir(t)
	defer boltdbtest.RemoveTempDir(t, dir)

	db, err := NewStorage(dir)
	assert.NoError(t, err)
	defer db.Close()

	var loaded record
	err = db.GetValue("bucket", "missing", &loaded)
	assert.Equal(t, storage.ErrNotFound, err)
}

func TestStorageDelete(t *testing.T) {
	dir := boltdbtest.CreateTempDir(t)
	defer boltdbtest.RemoveTempDir(t, dir)

	db, err := NewStorage(dir)
	assert.NoError(t, err)
	defer db.Close()

	err = db.SetValue("bucket", "key", record{Name: "test"})
	assert.NoError(t, err)

	err = db.DeleteValue("bucket", "key")
	assert.NoError(t, err)

	var loaded record
	err = db.GetValue("bucket", "key", &loaded)
	assert.Equal(t, storage.ErrNotFound, err)

	// deleting twice is fine
	err = db.DeleteValue("bucket", "key")
	assert.NoError(t, err)
}
