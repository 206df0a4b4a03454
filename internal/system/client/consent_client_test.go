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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/openbanking-selfcare-service/internal/consent/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/config"
	errors2 "github.com/wso2/openbanking-selfcare-service/internal/system/errors"
)

var (
	customer = model.User{Email: "admin@wso2.com", AccessToken: "user-token"}
	officer  = model.User{Email: "care@bank.com", IsOfficer: true, AccessToken: "officer-token"}
)

func newBackend(t *testing.T, handler http.HandlerFunc) (*ConsentClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.ConsentBackendConfig{
		BaseURL:             server.URL + "/api/openbanking/consent/",
		SearchPath:          "/admin/search",
		HistoryPath:         "/admin/consent-amendment-history",
		RevokePath:          "/admin/revoke",
		ApplicationInfoPath: "/admin/application-info",
		TenantDomain:        "carbon.super",
	}
	return NewConsentClient(cfg, server.Client()), server
}

func TestSearchConsents_CustomerSearchesOwnConsents(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/openbanking/consent/admin/search", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		assert.Equal(t, "admin@wso2.com@carbon.super", r.URL.Query().Get("userIDs"))
		assert.Equal(t, "c-1,c-2", r.URL.Query().Get("consentIDs"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"consentId":"c-1","clientId":"app-1","currentStatus":"authorized",
			"consentAttributes":{"customerProfileType":"business-profile"}}],
			"metadata":{"count":1,"offset":0,"limit":10,"total":1}}`))
	})

	result, err := client.SearchConsents(context.Background(), model.SearchCriteria{
		ConsentIDs: []string{"c-1", "c-2"},
		UserIDs:    []string{"someone-else@wso2.com"},
		Limit:      10,
	}, customer)

	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "business-profile", result.Data[0].Attribute("customerProfileType"))
	assert.Equal(t, 1, result.Metadata.Total)
}

func TestSearchConsents_OfficerKeepsUserFilter(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "someone@wso2.com", r.URL.Query().Get("userIDs"))
		_, _ = w.Write([]byte(`{"data":[],"metadata":{}}`))
	})

	_, err := client.SearchConsents(context.Background(), model.SearchCriteria{
		UserIDs: []string{"someone@wso2.com"},
	}, officer)
	require.NoError(t, err)
}

func TestGetConsentHistory_Query(t *testing.T) {
	tests := []struct {
		name       string
		user       model.User
		wantUserID string
	}{
		{"customer", customer, "admin@wso2.com@carbon.super"},
		{"officer", officer, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/openbanking/consent/admin/consent-amendment-history", r.URL.Path)
				assert.Equal(t, "c-1", r.URL.Query().Get("cdrArrangementID"))
				assert.Equal(t, tt.wantUserID, r.URL.Query().Get("userID"))
				_, hasUserID := r.URL.Query()["userID"]
				assert.Equal(t, tt.wantUserID != "", hasUserID)

				_, _ = w.Write([]byte(`{"cdrArrangementId":"c-1","consentAmendmentHistory":[
					{"amendedReason":"ConsentAmendmentFlow","amendedTime":1700000000,
					 "previousConsentData":{"permissions":["CDRREADPAYEES"],"sharingDuration":3600,
					 "userList":[{"userId":"admin@wso2.com@carbon.super","authType":"primary_member","accountList":["acc-1"]}]}}]}`))
			})

			history, err := client.GetConsentHistory(context.Background(), "c-1", tt.user)
			require.NoError(t, err)
			require.Len(t, history.ConsentAmendmentHistory, 1)
			record := history.ConsentAmendmentHistory[0]
			assert.Equal(t, int64(3600), record.PreviousConsentData.SharingDuration)
			assert.Equal(t, []string{"acc-1"}, record.PreviousConsentData.UserList[0].AccountList)
		})
	}
}

func TestRevokeConsent_ReturnsBackendStatus(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusOK, http.StatusInternalServerError} {
		client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "c-1", r.URL.Query().Get("consentID"))
			assert.Equal(t, "admin@wso2.com@carbon.super", r.URL.Query().Get("userID"))
			w.WriteHeader(status)
		})

		got, err := client.RevokeConsent(context.Background(), "app-1", "c-1", customer)
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}
}

func TestRevokeConsent_TransportFailure(t *testing.T) {
	client, server := newBackend(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.RevokeConsent(context.Background(), "app-1", "c-1", customer)

	var clientError *errors2.ClientError
	require.True(t, errors.As(err, &clientError))
	assert.Equal(t, http.StatusBadGateway, clientError.StatusCode)
	assert.Equal(t, errors2.UPSTREAM_UNAVAILABLE.Code, clientError.Code)
}

func TestGetJSON_StatusMapping(t *testing.T) {
	tests := []struct {
		status     int
		wantStatus int
		wantCode   string
	}{
		{http.StatusUnauthorized, http.StatusUnauthorized, errors2.UN_AUTHORIZED.Code},
		{http.StatusForbidden, http.StatusForbidden, errors2.FORBIDDEN.Code},
		{http.StatusNotFound, http.StatusNotFound, errors2.CONSENT_NOT_FOUND.Code},
		{http.StatusBadRequest, http.StatusBadRequest, errors2.BAD_REQUEST.Code},
		{http.StatusServiceUnavailable, http.StatusBadGateway, errors2.UPSTREAM_UNAVAILABLE.Code},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.GetConsentHistory(context.Background(), "c-1", customer)

			var clientError *errors2.ClientError
			require.True(t, errors.As(err, &clientError))
			assert.Equal(t, tt.wantStatus, clientError.StatusCode)
			assert.Equal(t, tt.wantCode, clientError.Code)
		})
	}
}

func TestGetJSON_MalformedBody(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [`))
	})

	_, err := client.SearchConsents(context.Background(), model.SearchCriteria{}, customer)

	var serverError *errors2.ServerError
	require.True(t, errors.As(err, &serverError))
	assert.Equal(t, errors2.UNMARSHAL_JSON.Code, serverError.Code)
}

func TestGetApplicationInfo(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "app-1,app-2", r.URL.Query().Get("clientIDs"))
		_, _ = w.Write([]byte(`{"app-1":{"client_name":"Mock Finance","org_name":"Mock Org"},"app-2":{"software_id":"sw-2"}}`))
	})

	info, err := client.GetApplicationInfo(context.Background(), []string{"app-1", "app-2"}, customer)
	require.NoError(t, err)
	assert.Equal(t, "Mock Finance", info["app-1"].DisplayName())
	assert.Equal(t, "Mock Org", info["app-1"].DataRecipientName())
	assert.Equal(t, "sw-2", info["app-2"].DisplayName())
}

func TestGetApplicationInfo_NoClients(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend must not be called")
	})

	info, err := client.GetApplicationInfo(context.Background(), nil, customer)
	require.NoError(t, err)
	assert.Empty(t, info)
}
