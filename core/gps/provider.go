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

// Package gps declares the platform positioning capability. Concrete
// backends live outside this repository; the service consumes the capability
// through the Provider interface only.
package gps

import (
	"context"
	"time"
)

// Permission is the outcome of a foreground location permission request.
type Permission int

const (
	// PermissionDenied means the user or platform refused location access.
	PermissionDenied Permission = iota
	// PermissionGranted means foreground location access is allowed.
	PermissionGranted
)

// Accuracy hints the positioning backend how precise a fix is needed.
type Accuracy int

const (
	// AccuracyLow allows coarse, power-saving fixes.
	AccuracyLow Accuracy = iota
	// AccuracyHigh requests a precise fix, typically engaging GPS radio.
	AccuracyHigh
)

// Fix is a single coordinate reading from the positioning capability.
type Fix struct {
	Latitude  float64
	Longitude float64
	Timestamp time.Time
}

// Provider abstracts the platform positioning APIs.
type Provider interface {
	// ServicesEnabled reports whether location services are globally enabled.
	ServicesEnabled() (bool, error)

	// RequestPermission asks for foreground location permission. It may
	// suspend on a platform prompt.
	RequestPermission() (Permission, error)

	// LastKnownFix returns the platform's most recently cached fix without
	// new radio activity, or nil when the platform has none.
	LastKnownFix() (*Fix, error)

	// CurrentFix obtains a new fix. The call may block arbitrarily long,
	// callers are expected to bound it via ctx.
	CurrentFix(ctx context.Context, accuracy Accuracy) (Fix, error)
}

// NewProviderUnsupported returns a Provider for platforms without positioning
// support. It reports location services as disabled, which sends every
// acquisition straight to the fallback location.
func NewProviderUnsupported() Provider {
	return &providerUnsupported{}
}

type providerUnsupported struct{}

func (p *providerUnsupported) ServicesEnabled() (bool, error) {
	return false, nil
}

func (p *providerUnsupported) RequestPermission() (Permission, error) {
	return PermissionDenied, nil
}

func (p *providerUnsupported) LastKnownFix() (*Fix, error) {
	return nil, nil
}

func (p *providerUnsupported) CurrentFix(ctx context.Context, accuracy Accuracy) (Fix, error) {
	<-ctx.Done()
	return Fix{}, ctx.Err()
}
