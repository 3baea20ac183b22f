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

package endpoints

import (
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/powermesh/locator/localapi/utils"
	"github.com/powermesh/locator/metadata"
)

type healthCheckData struct {
	Uptime  string    `json:"uptime"`
	Process int       `json:"process"`
	Version buildInfo `json:"version"`
}

type buildInfo struct {
	Commit      string `json:"commit"`
	Branch      string `json:"branch"`
	BuildNumber string `json:"buildNumber"`
}

type healthCheckEndpoint struct {
	startTime       time.Time
	currentTimeFunc func() time.Time
	processNumber   int
}

// HealthCheckEndpointFactory creates a structure with a single HealthCheck
// method; currentTimeFunc is injected for easier testing.
func HealthCheckEndpointFactory(currentTimeFunc func() time.Time, procID func() int) *healthCheckEndpoint {
	startTime := currentTimeFunc()
	return &healthCheckEndpoint{
		startTime:       startTime,
		currentTimeFunc: currentTimeFunc,
		processNumber:   procID(),
	}
}

// HealthCheck responds with process uptime and build information.
func (hce *healthCheckEndpoint) HealthCheck(writer http.ResponseWriter, request *http.Request, params httprouter.Params) {
	status := healthCheckData{
		Uptime:  hce.currentTimeFunc().Sub(hce.startTime).String(),
		Process: hce.processNumber,
		Version: buildInfo{
			Commit:      metadata.BuildCommit,
			Branch:      metadata.BuildBranch,
			BuildNumber: metadata.BuildNumber,
		},
	}
	utils.WriteAsJSON(status, writer)
}

// AddRoutesForHealthCheck adds the healthcheck route to given router
func AddRoutesForHealthCheck(router *httprouter.Router) {
	router.GET("/healthcheck", HealthCheckEndpointFactory(time.Now, os.Getpid).HealthCheck)
}
