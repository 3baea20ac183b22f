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

package gps

import (
	"context"
	"sync"
)

// ProviderFake is a programmable Provider for tests.
type ProviderFake struct {
	Enabled       bool
	Permission    Permission
	LastKnown     *Fix
	Fresh         Fix
	FreshErr      error
	FreshBlocks   bool
	ServicesErr   error
	PermissionErr error

	mu                   sync.Mutex
	servicesEnabledCalls int
	permissionCalls      int
	lastKnownCalls       int
	currentFixCalls      int
}

// NewProviderFake returns a fake provider with services enabled and
// permission granted.
func NewProviderFake(fresh Fix) *ProviderFake {
	return &ProviderFake{
		Enabled:    true,
		Permission: PermissionGranted,
		Fresh:      fresh,
	}
}

// ServicesEnabled reports the programmed enabled state.
func (p *ProviderFake) ServicesEnabled() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.servicesEnabledCalls++
	return p.Enabled, p.ServicesErr
}

// RequestPermission reports the programmed permission outcome.
func (p *ProviderFake) RequestPermission() (Permission, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.permissionCalls++
	return p.Permission, p.PermissionErr
}

// LastKnownFix returns the programmed last known fix.
func (p *ProviderFake) LastKnownFix() (*Fix, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastKnownCalls++
	if p.LastKnown == nil {
		return nil, nil
	}
	fix := *p.LastKnown
	return &fix, nil
}

// CurrentFix returns the programmed fresh fix, or blocks until ctx expiry
// when FreshBlocks is set.
func (p *ProviderFake) CurrentFix(ctx context.Context, accuracy Accuracy) (Fix, error) {
	p.mu.Lock()
	p.currentFixCalls++
	blocks := p.FreshBlocks
	fix, err := p.Fresh, p.FreshErr
	p.mu.Unlock()

	if blocks {
		<-ctx.Done()
		return Fix{}, ctx.Err()
	}
	return fix, err
}

// CurrentFixCalls reports how many times CurrentFix was invoked.
func (p *ProviderFake) CurrentFixCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentFixCalls
}

// PermissionCalls reports how many times RequestPermission was invoked.
func (p *ProviderFake) PermissionCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.permissionCalls
}

// LastKnownCalls reports how many times LastKnownFix was invoked.
func (p *ProviderFake) LastKnownCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastKnownCalls
}
