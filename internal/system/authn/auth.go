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

package authn

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wso2/openbanking-selfcare-service/internal/consent/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/cache"
	"github.com/wso2/openbanking-selfcare-service/internal/system/config"
	errors2 "github.com/wso2/openbanking-selfcare-service/internal/system/errors"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
)

// Introspector confirms that a token is still active.
type Introspector interface {
	IntrospectToken(ctx context.Context, token string) (map[string]interface{}, error)
}

// Authenticator validates the bearer tokens presented to the portal API.
type Authenticator struct {
	cfg          config.AuthServerConfig
	introspector Introspector
	active       *cache.Cache
	now          func() time.Time
}

func NewAuthenticator(cfg config.AuthServerConfig, introspector Introspector) *Authenticator {
	return &Authenticator{
		cfg:          cfg,
		introspector: introspector,
		active:       cache.NewCache(5*time.Minute, 10*time.Minute),
		now:          time.Now,
	}
}

// ValidateAuthenticationAndReturnClaims checks a bearer token and returns its claims. The
// token must be a JWT that the authorization server reports as active, carrying the expected
// audience and an expiry in the future. Active tokens are remembered until they expire.
func (a *Authenticator) ValidateAuthenticationAndReturnClaims(ctx context.Context, token string) (map[string]interface{}, error) {

	logger := log.GetLogger()
	if strings.Count(token, ".") != 2 {
		logger.Debug("Expecting a JWT token but received an opaque token.")
		return nil, unauthorizedError()
	}

	claims, err := ParseJWTClaims(token)
	if err != nil {
		return nil, unauthorizedError()
	}
	exp, ok := a.validateClaims(claims)
	if !ok {
		return nil, unauthorizedError()
	}

	if _, found := a.active.Get(token); found {
		return claims, nil
	}

	introspectionClaims, err := a.introspector.IntrospectToken(ctx, token)
	if err != nil {
		logger.Debug("Token introspection failed.", log.Error(err))
		return nil, unauthorizedError()
	}
	active, ok := introspectionClaims["active"].(bool)
	if !ok || !active {
		logger.Debug("JWT token is not active according to introspection.")
		return nil, unauthorizedError()
	}

	a.active.SetWithTTL(token, true, exp.Sub(a.now()))
	return claims, nil
}

// ParseJWTClaims parses claims from a JWT without verifying the signature. The signature is
// vouched for by the introspection call.
func ParseJWTClaims(tokenString string) (map[string]interface{}, error) {

	logger := log.GetLogger()
	claims := jwt.MapClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims)
	if err != nil {
		errMsg := "Error occurred when parsing claims from JWT token."
		logger.Debug(errMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.PARSING_ERROR.Code,
			Message:     errors2.PARSING_ERROR.Message,
			Description: errMsg,
		}, err)
	}
	return claims, nil
}

// validateClaims ensures the token has not expired and, when configured, carries the
// expected audience. It returns the expiry time.
func (a *Authenticator) validateClaims(claims map[string]interface{}) (time.Time, bool) {

	logger := log.GetLogger()
	expRaw, ok := claims["exp"]
	if !ok {
		logger.Debug("Token does not have an expiration time.")
		return time.Time{}, false
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		logger.Debug("Token does not have a valid expiration time.", log.Any("exp", expRaw))
		return time.Time{}, false
	}
	exp := time.Unix(int64(expFloat), 0)
	if !exp.After(a.now()) {
		logger.Debug("Token has expired.", log.String("exp", exp.String()))
		return time.Time{}, false
	}

	if a.cfg.ExpectedAudience == "" {
		return exp, true
	}
	if slices.Contains(stringList(claims["aud"]), a.cfg.ExpectedAudience) {
		return exp, true
	}
	logger.Debug("Token audience does not match expected audience.")
	return time.Time{}, false
}

// UserFromClaims builds the portal user from validated claims. The email claim identifies
// the user, falling back to the subject.
func (a *Authenticator) UserFromClaims(claims map[string]interface{}, token string) model.User {

	email, _ := claims["email"].(string)
	if email == "" {
		email, _ = claims["sub"].(string)
	}
	roles := stringList(claims[a.cfg.RoleClaim])

	return model.User{
		Email:       email,
		Roles:       roles,
		IsOfficer:   a.cfg.OfficerRole != "" && slices.Contains(roles, a.cfg.OfficerRole),
		AccessToken: token,
	}
}

// stringList reads a claim that may be a single string, a space or comma separated string,
// or a list.
func stringList(raw interface{}) []string {

	var values []string
	switch v := raw.(type) {
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
	case []string:
		values = append(values, v...)
	case string:
		values = strings.FieldsFunc(v, func(r rune) bool { return r == ' ' || r == ',' })
	}
	return values
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UN_AUTHORIZED.Code,
		Message:     errors2.UN_AUTHORIZED.Message,
		Description: errors2.UN_AUTHORIZED.Description,
	}, http.StatusUnauthorized)
}
