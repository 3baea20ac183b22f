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

package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	userAgentName  = "powermesh-locator/0.1"
	requestTimeout = 10 * time.Second
)

type restResolver struct {
	httpClient *http.Client
	address    string
}

// NewRestResolver returns a Resolver backed by a Nominatim-compatible
// reverse geocoding HTTP service.
func NewRestResolver(address string, timeout time.Duration) Resolver {
	return &restResolver{
		httpClient: &http.Client{Timeout: timeout},
		address:    address,
	}
}

type reverseResponse struct {
	Address struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// ReverseGeocode resolves the coordinate via the remote service, retrying
// transient failures a couple of times before giving up.
func (r *restResolver) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*Address, error) {
	log.Debug().Msgf("Reverse geocoding %.4f,%.4f", latitude, longitude)

	eback := backoff.NewExponentialBackOff()
	eback.InitialInterval = time.Second
	eback.MaxElapsedTime = 15 * time.Second
	boff := backoff.WithContext(backoff.WithMaxRetries(eback, 2), ctx)

	var resp reverseResponse
	retry := func() error {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()

		request, err := r.newReverseRequest(reqCtx, latitude, longitude)
		if err != nil {
			return backoff.Permanent(errors.Wrap(err, "failed to create request"))
		}
		if err := r.doRequestAndParseResponse(request, &resp); err != nil {
			log.Debug().Err(err).Msg("Reverse geocoding failed, will try again")
			return err
		}
		return nil
	}

	if err := backoff.Retry(retry, boff); err != nil {
		return nil, fmt.Errorf("could not reverse geocode: %w", err)
	}

	address := addressFromResponse(resp)
	if address == nil {
		log.Debug().Msgf("No address known for %.4f,%.4f", latitude, longitude)
	}
	return address, nil
}

func (r *restResolver) newReverseRequest(ctx context.Context, latitude, longitude float64) (*http.Request, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/reverse?%s", r.address, params.Encode()), nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("User-Agent", userAgentName)
	request.Header.Set("Accept", "application/json")
	return request, nil
}

func (r *restResolver) doRequestAndParseResponse(request *http.Request, resp interface{}) error {
	response, err := r.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if err := parseResponseError(response); err != nil {
		return err
	}
	return parseResponseJSON(response, resp)
}

// parseResponseJSON parses http.Response into the given struct
func parseResponseJSON(response *http.Response, dto interface{}) error {
	responseJSON, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(responseJSON, dto)
}

// parseResponseError checks the response for error codes
func parseResponseError(response *http.Response) error {
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return errors.Errorf("server responded with an error: %v (%v)", response.StatusCode, response.Request.URL)
	}
	return nil
}

func addressFromResponse(resp reverseResponse) *Address {
	city := resp.Address.City
	if city == "" {
		city = resp.Address.Town
	}
	if city == "" {
		city = resp.Address.Village
	}
	if city == "" && resp.Address.State == "" && resp.Address.Postcode == "" {
		return nil
	}
	return &Address{
		City:       city,
		Region:     resp.Address.State,
		PostalCode: resp.Address.Postcode,
	}
}
