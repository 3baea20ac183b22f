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
	"net"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/powermesh/locator/config"
	"github.com/powermesh/locator/core/geocode"
	"github.com/powermesh/locator/core/gps"
	"github.com/powermesh/locator/core/location"
	"github.com/powermesh/locator/core/storage/boltdb"
	"github.com/powermesh/locator/eventbus"
	"github.com/powermesh/locator/localapi"
)

// Options describes the daemon runtime configuration
type Options struct {
	DataDir          string
	APIAddress       string
	GeocoderAddress  string
	DefaultLatitude  float64
	DefaultLongitude float64
	Location         location.Options
}

// ParseOptions reads daemon options from the current configuration
func ParseOptions() Options {
	return Options{
		DataDir:          config.Current.GetString(config.FlagDataDir.Name),
		APIAddress:       config.Current.GetString(config.FlagAPIAddress.Name),
		GeocoderAddress:  config.Current.GetString(config.FlagGeocoderAddress.Name),
		DefaultLatitude:  config.Current.GetFloat64(config.FlagDefaultLatitude.Name),
		DefaultLongitude: config.Current.GetFloat64(config.FlagDefaultLongitude.Name),
		Location: location.Options{
			CacheTTL:          config.Current.GetDuration(config.FlagCacheTTL.Name),
			FixTimeout:        config.Current.GetDuration(config.FlagFixTimeout.Name),
			FollowerWaitBound: config.Current.GetDuration(config.FlagWaitBound.Name),
		},
	}
}

// Dependencies holds the instantiated service graph
type Dependencies struct {
	// GPSProvider may be set before Bootstrap by an embedding application
	// that has a real positioning backend. When nil, a provider reporting
	// location services as unavailable is used and the service serves the
	// fallback location.
	GPSProvider gps.Provider

	Storage          *boltdb.Bolt
	EventBus         eventbus.EventBus
	LocationResolver location.Resolver
	APIServer        localapi.APIServer
}

// Bootstrap initializes the service graph from the given options
func (di *Dependencies) Bootstrap(options Options) error {
	if err := os.MkdirAll(options.DataDir, 0700); err != nil {
		return errors.Wrap(err, "failed to create data directory")
	}

	storage, err := boltdb.NewStorage(options.DataDir)
	if err != nil {
		return err
	}
	di.Storage = storage
	di.EventBus = eventbus.New()

	if di.GPSProvider == nil {
		di.GPSProvider = gps.NewProviderUnsupported()
	}

	di.LocationResolver = location.NewResolver(
		di.GPSProvider,
		geocode.NewRestResolver(options.GeocoderAddress, 20*time.Second),
		di.Storage,
		di.EventBus,
		location.NewStaticProvider(options.DefaultLatitude, options.DefaultLongitude, location.DefaultAddress),
		options.Location,
	)

	listener, err := net.Listen("tcp", options.APIAddress)
	if err != nil {
		return errors.Wrap(err, "failed to bind local API address")
	}
	di.APIServer = localapi.NewServer(listener, localapi.NewAPIRouter(di.LocationResolver))
	di.APIServer.StartServing()
	return nil
}

// Shutdown stops the service graph and releases held resources
func (di *Dependencies) Shutdown() error {
	if di.APIServer != nil {
		di.APIServer.Stop()
	}
	if di.Storage != nil {
		return di.Storage.Close()
	}
	return nil
}
