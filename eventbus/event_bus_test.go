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

package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_simplifiedEventBus_Publish_InvokesSubscribers(t *testing.T) {
	eventBus := New()
	var received string
	err := eventBus.Subscribe("test topic", func(data string) {
		received = data
	})
	assert.NoError(t, err)

	eventBus.Publish("test topic", "test data")

	assert.Equal(t, "test data", received)
}

func Test_simplifiedEventBus_Unsubscribe_StopsDelivery(t *testing.T) {
	eventBus := New()
	var count int
	handler := func(data string) {
		count++
	}
	err := eventBus.Subscribe("test topic", handler)
	assert.NoError(t, err)

	eventBus.Publish("test topic", "one")
	assert.NoError(t, eventBus.Unsubscribe("test topic", handler))
	eventBus.Publish("test topic", "two")

	assert.Equal(t, 1, count)
}
