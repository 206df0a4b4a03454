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
	"strconv"
	"strings"

	"github.com/wso2/openbanking-selfcare-service/internal/consent/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/config"
	errors2 "github.com/wso2/openbanking-selfcare-service/internal/system/errors"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
	"github.com/wso2/openbanking-selfcare-service/internal/system/utils"
)

// ConsentClient calls the consent management admin API on behalf of the portal user. The
// user's access token is forwarded with every call.
type ConsentClient struct {
	cfg        config.ConsentBackendConfig
	HTTPClient *http.Client
}

func NewConsentClient(cfg config.ConsentBackendConfig, httpClient *http.Client) *ConsentClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ConsentClient{
		cfg:        cfg,
		HTTPClient: httpClient,
	}
}

// SearchConsents lists the consents matching criteria. Customers only ever search their own
// consents; officers may search any user's.
func (c *ConsentClient) SearchConsents(ctx context.Context, criteria model.SearchCriteria,
	user model.User) (model.ConsentSearchResult, error) {

	var result model.ConsentSearchResult

	userIDs := criteria.UserIDs
	if !user.IsOfficer {
		userIDs = []string{user.QualifiedID(c.cfg.TenantDomain)}
	}

	query := url.Values{}
	setList(query, "consentIDs", criteria.ConsentIDs)
	setList(query, "userIDs", userIDs)
	setList(query, "clientIDs", criteria.ClientIDs)
	setList(query, "consentStatuses", criteria.ConsentStatuses)
	setList(query, "consentTypes", criteria.ConsentTypes)
	if criteria.Limit > 0 {
		query.Set("limit", strconv.Itoa(criteria.Limit))
	}
	if criteria.Offset > 0 {
		query.Set("offset", strconv.Itoa(criteria.Offset))
	}

	err := c.getJSON(ctx, c.cfg.SearchPath, query, user, errors2.SEARCH_CONSENTS, "consent search", &result)
	return result, err
}

// GetConsentHistory fetches the amendment history of a consent. The user id filter is left
// out for officers.
func (c *ConsentClient) GetConsentHistory(ctx context.Context, consentID string,
	user model.User) (model.ConsentHistory, error) {

	var history model.ConsentHistory

	query := url.Values{}
	query.Set("cdrArrangementID", consentID)
	if !user.IsOfficer {
		query.Set("userID", user.QualifiedID(c.cfg.TenantDomain))
	}

	err := c.getJSON(ctx, c.cfg.HistoryPath, query, user, errors2.FETCH_CONSENT_HISTORY, "consent history", &history)
	return history, err
}

// RevokeConsent asks the backend to revoke a consent and returns the status it answered
// with. Only a transport failure is returned as an error; judging the status is left to the
// caller.
func (c *ConsentClient) RevokeConsent(ctx context.Context, clientID, consentID string, user model.User) (int, error) {

	query := url.Values{}
	query.Set("consentID", consentID)
	query.Set("userID", user.QualifiedID(c.cfg.TenantDomain))
	endpoint := c.endpoint(c.cfg.RevokePath, query)

	log.GetLogger().Debug(fmt.Sprintf("Revoking consent %s of client %s", consentID, clientID))
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint, user)
	if err != nil {
		return 0, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.REVOKE_CONSENT.Code,
			Message:     errors2.REVOKE_CONSENT.Message,
			Description: "Failed to build the revocation request.",
		}, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, unavailableError(fmt.Sprintf("Failed to revoke consent %s.", consentID),
			utils.WrapUpstream(err, http.MethodDelete, endpoint))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// GetApplicationInfo fetches the registration metadata of the given clients.
func (c *ConsentClient) GetApplicationInfo(ctx context.Context, clientIDs []string, user model.User) (model.AppInfo, error) {

	info := model.AppInfo{}
	if len(clientIDs) == 0 {
		return info, nil
	}
	query := url.Values{}
	query.Set("clientIDs", strings.Join(clientIDs, ","))

	err := c.getJSON(ctx, c.cfg.ApplicationInfoPath, query, user, errors2.FETCH_APPLICATION_INFO, "application information", &info)
	return info, err
}

func (c *ConsentClient) getJSON(ctx context.Context, path string, query url.Values, user model.User,
	failure errors2.ErrorMessage, resource string, target interface{}) error {

	logger := log.GetLogger()
	endpoint := c.endpoint(path, query)

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, user)
	if err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        failure.Code,
			Message:     failure.Message,
			Description: fmt.Sprintf("Failed to build the %s request.", resource),
		}, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Debug(fmt.Sprintf("Call to %s failed", endpoint), log.Error(err))
		return unavailableError(fmt.Sprintf("Failed to fetch %s.", resource),
			utils.WrapUpstream(err, http.MethodGet, endpoint))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Debug(fmt.Sprintf("%s endpoint returned status %d: %s", resource, resp.StatusCode,
			strings.TrimSpace(string(bodyBytes))))
		return statusError(resp.StatusCode, resource)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UNMARSHAL_JSON.Code,
			Message:     errors2.UNMARSHAL_JSON.Message,
			Description: utils.DescribeDecodeError(err, resource),
		}, err)
	}
	return nil
}

func (c *ConsentClient) newRequest(ctx context.Context, method, endpoint string, user model.User) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if user.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+user.AccessToken)
	}
	return req, nil
}

func (c *ConsentClient) endpoint(path string, query url.Values) string {
	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return endpoint
}

func setList(query url.Values, key string, values []string) {
	if len(values) > 0 {
		query.Set(key, strings.Join(values, ","))
	}
}

// statusError maps a non-200 answer of the backend to the error returned to the portal user.
func statusError(status int, resource string) error {

	switch status {
	case http.StatusUnauthorized:
		return errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized)
	case http.StatusForbidden:
		return errors2.NewClientError(errors2.FORBIDDEN, http.StatusForbidden)
	case http.StatusNotFound:
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.CONSENT_NOT_FOUND.Code,
			Message:     errors2.CONSENT_NOT_FOUND.Message,
			Description: fmt.Sprintf("No %s found.", resource),
		}, http.StatusNotFound)
	case http.StatusBadRequest:
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: fmt.Sprintf("The consent service rejected the %s request.", resource),
		}, http.StatusBadRequest)
	default:
		return unavailableError(fmt.Sprintf("Failed to fetch %s, try again later.", resource),
			fmt.Errorf("upstream status %d", status))
	}
}

func unavailableError(description string, cause error) error {
	log.GetLogger().Debug(description, log.Error(cause))
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UPSTREAM_UNAVAILABLE.Code,
		Message:     errors2.UPSTREAM_UNAVAILABLE.Message,
		Description: description,
	}, http.StatusBadGateway)
}
