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
	"net/http"
	"strings"

	"github.com/wso2/openbanking-selfcare-service/internal/consent/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/authn"
	"github.com/wso2/openbanking-selfcare-service/internal/system/authz"
	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
	"github.com/wso2/openbanking-selfcare-service/internal/system/errors"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
)

// TokenValidator validates bearer tokens and maps their claims to portal users.
type TokenValidator interface {
	ValidateAuthenticationAndReturnClaims(ctx context.Context, token string) (map[string]interface{}, error)
	UserFromClaims(claims map[string]interface{}, token string) model.User
}

var _ TokenValidator = (*authn.Authenticator)(nil)

// Guard authenticates and authorizes portal API requests.
type Guard struct {
	validator      TokenValidator
	requiredScopes map[string][]string
}

func NewGuard(validator TokenValidator, requiredScopes map[string][]string) *Guard {
	return &Guard{
		validator:      validator,
		requiredScopes: requiredScopes,
	}
}

// AuthnAndAuthz performs authentication and authorization for the given HTTP request and
// operation, and returns the calling user.
func (g *Guard) AuthnAndAuthz(r *http.Request, operation string) (model.User, error) {

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return model.User{}, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	claims, err := g.validator.ValidateAuthenticationAndReturnClaims(r.Context(), token)
	if err != nil {
		auditAuthentication(r, "", log.ActionAuthenticationFailure)
		return model.User{}, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UN_AUTHORIZED.Code,
			Message:     errors.UN_AUTHORIZED.Message,
			Description: "Missing or invalid Authorization header",
		}, http.StatusUnauthorized)
	}
	user := g.validator.UserFromClaims(claims, token)

	scope, _ := claims["scope"].(string)
	if !authz.ValidatePermission(g.requiredScopes, scope, operation) {
		return model.User{}, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.FORBIDDEN.Code,
			Message:     errors.FORBIDDEN.Message,
			Description: errors.FORBIDDEN.Description,
		}, http.StatusForbidden)
	}

	auditAuthentication(r, user.Email, log.ActionAuthenticationSuccess)
	return user, nil
}

func auditAuthentication(r *http.Request, userID, action string) {
	traceID, _ := r.Context().Value(constants.TraceIDContextKey).(string)
	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   userID,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      r.URL.Path,
		TargetType:    log.TargetTypeConsent,
		ActionID:      action,
		TraceID:       traceID,
	})
}
