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

package security

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/openbanking-selfcare-service/internal/consent/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/authn"
	"github.com/wso2/openbanking-selfcare-service/internal/system/config"
	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
	errors2 "github.com/wso2/openbanking-selfcare-service/internal/system/errors"
)

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) ValidateAuthenticationAndReturnClaims(ctx context.Context, token string) (map[string]interface{}, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockValidator) UserFromClaims(claims map[string]interface{}, token string) model.User {
	args := m.Called(claims, token)
	return args.Get(0).(model.User)
}

var requiredScopes = map[string][]string{
	constants.OperationViewConsent:   {"consents:read_self"},
	constants.OperationRevokeConsent: {"consents:write_self"},
}

func requestWithAuth(header string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/consents", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	return r
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var clientError *errors2.ClientError
	require.True(t, errors.As(err, &clientError))
	return clientError.StatusCode
}

func TestAuthnAndAuthz_Success(t *testing.T) {
	validator := new(MockValidator)
	claims := map[string]interface{}{"scope": "openid consents:read_self", "sub": "admin@wso2.com"}
	validator.On("ValidateAuthenticationAndReturnClaims", mock.Anything, "abc.def.ghi").Return(claims, nil)
	validator.On("UserFromClaims", claims, "abc.def.ghi").Return(model.User{Email: "admin@wso2.com", AccessToken: "abc.def.ghi"})

	user, err := NewGuard(validator, requiredScopes).AuthnAndAuthz(requestWithAuth("Bearer abc.def.ghi"), constants.OperationViewConsent)

	require.NoError(t, err)
	assert.Equal(t, "admin@wso2.com", user.Email)
	validator.AssertExpectations(t)
}

func TestAuthnAndAuthz_MissingHeader(t *testing.T) {
	validator := new(MockValidator)
	for _, header := range []string{"", "Basic YWRtaW46YWRtaW4="} {
		_, err := NewGuard(validator, requiredScopes).AuthnAndAuthz(requestWithAuth(header), constants.OperationViewConsent)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	}
	validator.AssertNotCalled(t, "ValidateAuthenticationAndReturnClaims", mock.Anything, mock.Anything)
}

func TestAuthnAndAuthz_InvalidToken(t *testing.T) {
	validator := new(MockValidator)
	validator.On("ValidateAuthenticationAndReturnClaims", mock.Anything, "bad").
		Return(nil, errors.New("inactive"))

	_, err := NewGuard(validator, requiredScopes).AuthnAndAuthz(requestWithAuth("Bearer bad"), constants.OperationViewConsent)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestAuthnAndAuthz_MissingScope(t *testing.T) {
	validator := new(MockValidator)
	claims := map[string]interface{}{"scope": "consents:read_self"}
	validator.On("ValidateAuthenticationAndReturnClaims", mock.Anything, "abc.def.ghi").Return(claims, nil)
	validator.On("UserFromClaims", claims, "abc.def.ghi").Return(model.User{Email: "admin@wso2.com"})

	_, err := NewGuard(validator, requiredScopes).AuthnAndAuthz(requestWithAuth("Bearer abc.def.ghi"), constants.OperationRevokeConsent)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}

func TestAuthnAndAuthz_AuthenticatorRejectsOpaqueToken(t *testing.T) {
	authenticator := authn.NewAuthenticator(config.AuthServerConfig{}, nil)

	_, err := NewGuard(authenticator, requiredScopes).AuthnAndAuthz(requestWithAuth("Bearer opaque-token"), constants.OperationViewConsent)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}
