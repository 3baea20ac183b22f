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

package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/powermesh/locator/cmd/commands/daemon"
	"github.com/powermesh/locator/cmd/commands/version"
	"github.com/powermesh/locator/config"
	"github.com/powermesh/locator/logconfig"
	"github.com/powermesh/locator/metadata"
)

func main() {
	logconfig.Bootstrap()

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("Failed to execute command")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Usage = "Location resolution service for the PowerMesh energy marketplace"
	app.Version = metadata.VersionAsString()
	app.Commands = []*cli.Command{
		daemon.NewCommand(),
		version.NewCommand(),
	}
	config.RegisterFlags(&app.Flags)
	return app
}
