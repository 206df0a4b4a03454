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
	"github.com/wso2/openbanking-selfcare-service/internal/system/config"
	errors2 "github.com/wso2/openbanking-selfcare-service/internal/system/errors"
)

func TestIntrospectToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "portal", username)
		assert.Equal(t, "secret", password)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "abc.def.ghi", r.PostForm.Get("token"))

		_, _ = w.Write([]byte(`{"active":true,"scope":"consents:read_self"}`))
	}))
	defer server.Close()

	client := NewIdentityClient(config.AuthServerConfig{
		IntrospectionEndpoint: server.URL + "/oauth2/introspect",
		ClientID:              "portal",
		ClientSecret:          "secret",
	}, server.Client())

	claims, err := client.IntrospectToken(context.Background(), "abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, true, claims["active"])
	assert.Equal(t, "consents:read_self", claims["scope"])
}

func TestIntrospectToken_Failures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewIdentityClient(config.AuthServerConfig{IntrospectionEndpoint: server.URL}, server.Client())
	_, err := client.IntrospectToken(context.Background(), "abc.def.ghi")

	var serverError *errors2.ServerError
	require.True(t, errors.As(err, &serverError))
	assert.Equal(t, errors2.INTROSPECTION_FAILED.Code, serverError.Code)
}
