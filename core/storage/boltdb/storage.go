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

// Package boltdb provides the durable key-value store backed by an embedded
// BoltDB file.
package boltdb

import (
	"path/filepath"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/powermesh/locator/core/storage"
)

// Bolt is a wrapper around the boltdb database
type Bolt struct {
	db *storm.DB
}

// NewStorage creates a new BoltDB storage in the given directory
func NewStorage(path string) (*Bolt, error) {
	return openDB(filepath.Join(path, "locator.db"))
}

// openDB creates new or opens existing BoltDB
func openDB(name string) (*Bolt, error) {
	db, err := storm.Open(name, storm.BoltOptions(0600, &bolt.Options{Timeout: time.Second}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open boltdb")
	}
	return &Bolt{db}, nil
}

// SetValue stores the given value under the bucket and key
func (b *Bolt) SetValue(bucket string, key string, from interface{}) error {
	return b.db.Set(bucket, key, from)
}

// GetValue loads the value stored under the bucket and key
func (b *Bolt) GetValue(bucket string, key string, to interface{}) error {
	err := b.db.Get(bucket, key, to)
	if err == storm.ErrNotFound {
		return storage.ErrNotFound
	}
	return err
}

// DeleteValue removes the value stored under the bucket and key.
// Removing a missing value is not an error.
func (b *Bolt) DeleteValue(bucket string, key string) error {
	err := b.db.Delete(bucket, key)
	if err == storm.ErrNotFound {
		return nil
	}
	return err
}

// Close closes the database
func (b *Bolt) Close() error {
	return b.db.Close()
}
