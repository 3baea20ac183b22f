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

package cmd

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStopperExitsWithZeroOnSuccess(t *testing.T) {
	var exitCode = -1
	stop(func() error { return nil }, func(code int) { exitCode = code })

	assert.Equal(t, 0, exitCode)
}

func TestStopperExitsWithErrorCodeOnFailure(t *testing.T) {
	var exitCode = -1
	stop(func() error { return errors.New("cleanup failed") }, func(code int) { exitCode = code })

	assert.Equal(t, 1, exitCode)
}
