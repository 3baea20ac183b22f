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

package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/powermesh/locator/core/location"
	"github.com/powermesh/locator/logconfig"
)

var (
	// FlagDataDir directory for storing the durable cache and logs.
	FlagDataDir = cli.StringFlag{
		Name:  "data-dir",
		Usage: "Data directory containing the durable location cache and logs",
		Value: func() string {
			return filepath.Join(".", ".locator")
		}(),
	}
	// FlagAPIAddress local API bind address.
	FlagAPIAddress = cli.StringFlag{
		Name:  "api.address",
		Usage: "Local API address to listen on",
		Value: "127.0.0.1:4450",
	}
	// FlagGeocoderAddress reverse geocoding service base URL.
	FlagGeocoderAddress = cli.StringFlag{
		Name:  "geocoder.address",
		Usage: "Base URL of the Nominatim-compatible reverse geocoding service",
		Value: "https://nominatim.openstreetmap.org",
	}
	// FlagDefaultLatitude latitude of the fallback location.
	FlagDefaultLatitude = cli.Float64Flag{
		Name:  "location.default-latitude",
		Usage: "Latitude of the fallback location used when no fix is obtainable",
		Value: location.DefaultLatitude,
	}
	// FlagDefaultLongitude longitude of the fallback location.
	FlagDefaultLongitude = cli.Float64Flag{
		Name:  "location.default-longitude",
		Usage: "Longitude of the fallback location used when no fix is obtainable",
		Value: location.DefaultLongitude,
	}
	// FlagCacheTTL maximum age of a cached location.
	FlagCacheTTL = cli.DurationFlag{
		Name:  "location.cache-ttl",
		Usage: "Maximum age at which a cached location is still served",
		Value: 5 * time.Minute,
	}
	// FlagFixTimeout bound on a fresh platform fix request.
	FlagFixTimeout = cli.DurationFlag{
		Name:  "location.fix-timeout",
		Usage: "Time to wait for a fresh position fix before degrading",
		Value: 15 * time.Second,
	}
	// FlagWaitBound bound on waiting for an in-flight acquisition.
	FlagWaitBound = cli.DurationFlag{
		Name:  "location.wait-bound",
		Usage: "Time to wait on an acquisition started by another caller",
		Value: 20 * time.Second,
	}
	// FlagLogLevel logging level.
	FlagLogLevel = cli.StringFlag{
		Name: "log-level",
		Usage: func() string {
			allLevels := []string{
				zerolog.TraceLevel.String(),
				zerolog.DebugLevel.String(),
				zerolog.InfoLevel.String(),
				zerolog.WarnLevel.String(),
				zerolog.ErrorLevel.String(),
			}
			return fmt.Sprintf("Set the logging level (%s)", strings.Join(allLevels, "|"))
		}(),
		Value: zerolog.InfoLevel.String(),
	}
)

// RegisterFlags registers service CLI flags
func RegisterFlags(flags *[]cli.Flag) {
	*flags = append(*flags,
		&FlagDataDir,
		&FlagAPIAddress,
		&FlagGeocoderAddress,
		&FlagDefaultLatitude,
		&FlagDefaultLongitude,
		&FlagCacheTTL,
		&FlagFixTimeout,
		&FlagWaitBound,
		&FlagLogLevel,
	)
}

// ParseFlags parses service CLI flags from context into the current config
func ParseFlags(ctx *cli.Context) {
	Current.SetCLI(FlagDataDir.Name, ctx.String(FlagDataDir.Name))
	Current.SetCLI(FlagAPIAddress.Name, ctx.String(FlagAPIAddress.Name))
	Current.SetCLI(FlagGeocoderAddress.Name, ctx.String(FlagGeocoderAddress.Name))
	Current.SetCLI(FlagDefaultLatitude.Name, ctx.Float64(FlagDefaultLatitude.Name))
	Current.SetCLI(FlagDefaultLongitude.Name, ctx.Float64(FlagDefaultLongitude.Name))
	Current.SetCLI(FlagCacheTTL.Name, ctx.Duration(FlagCacheTTL.Name))
	Current.SetCLI(FlagFixTimeout.Name, ctx.Duration(FlagFixTimeout.Name))
	Current.SetCLI(FlagWaitBound.Name, ctx.Duration(FlagWaitBound.Name))
}

// ParseFlagsLogger parses logger CLI flags from context
func ParseFlagsLogger(ctx *cli.Context, logDir string) logconfig.LogOptions {
	level, err := zerolog.ParseLevel(ctx.String(FlagLogLevel.Name))
	if err != nil {
		log.Error().Err(err).Msg("Failed to parse logging level")
		level = zerolog.InfoLevel
	}
	return logconfig.LogOptions{
		LogLevel: level,
		Filepath: filepath.Join(logDir, "locator"),
	}
}
