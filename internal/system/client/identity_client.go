/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/wso2/openbanking-selfcare-service/internal/system/config"
	errors2 "github.com/wso2/openbanking-selfcare-service/internal/system/errors"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
)

// IdentityClient talks to the authorization server that issues the portal's access tokens.
type IdentityClient struct {
	cfg        config.AuthServerConfig
	HTTPClient *http.Client
}

func NewIdentityClient(cfg config.AuthServerConfig, httpClient *http.Client) *IdentityClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &IdentityClient{
		cfg:        cfg,
		HTTPClient: httpClient,
	}
}

// IntrospectToken introspects a token using the introspection endpoint and returns the
// introspection response.
func (c *IdentityClient) IntrospectToken(ctx context.Context, token string) (map[string]interface{}, error) {

	logger := log.GetLogger()
	form := url.Values{}
	form.Set("token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.IntrospectionEndpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, introspectionError("Failed to build the introspection request.", err)
	}
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		errorMsg := "Failed to introspect token"
		logger.Debug(errorMsg, log.Error(err))
		return nil, introspectionError(errorMsg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		errorMsg := fmt.Sprintf("Introspection endpoint returned status %d: %s", resp.StatusCode,
			strings.TrimSpace(string(bodyBytes)))
		logger.Debug(errorMsg)
		return nil, introspectionError(errorMsg, fmt.Errorf("introspection status %d", resp.StatusCode))
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, introspectionError("Failed to parse the introspection response.", err)
	}
	return result, nil
}

func introspectionError(description string, cause error) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.INTROSPECTION_FAILED.Code,
		Message:     errors2.INTROSPECTION_FAILED.Message,
		Description: description,
	}, cause)
}
