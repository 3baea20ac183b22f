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

// Package daemon implements the command to run the location service until
// interrupted.
package daemon

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/powermesh/locator/cmd"
	"github.com/powermesh/locator/config"
	"github.com/powermesh/locator/logconfig"
)

// NewCommand creates the daemon command
func NewCommand() *cli.Command {
	var di cmd.Dependencies

	return &cli.Command{
		Name:      "daemon",
		Usage:     "Starts the location resolution service",
		ArgsUsage: " ",
		Action: func(ctx *cli.Context) error {
			config.ParseFlags(ctx)
			options := cmd.ParseOptions()

			logOptions := config.ParseFlagsLogger(ctx, options.DataDir)
			logconfig.Configure(&logOptions)

			if err := di.Bootstrap(options); err != nil {
				return err
			}

			cmd.StopOnInterrupts(cmd.SoftKiller(di.Shutdown))

			// Wait unblocks once Shutdown closes the listener.
			if err := di.APIServer.Wait(); err != nil {
				log.Debug().Err(err).Msg("API server stopped")
			}
			return nil
		},
	}
}
