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

package provider

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/wso2/openbanking-selfcare-service/internal/consent/loader"
	"github.com/wso2/openbanking-selfcare-service/internal/consent/model"
	"github.com/wso2/openbanking-selfcare-service/internal/consent/service"
	"github.com/wso2/openbanking-selfcare-service/internal/system/authn"
	"github.com/wso2/openbanking-selfcare-service/internal/system/client"
	"github.com/wso2/openbanking-selfcare-service/internal/system/config"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
	"github.com/wso2/openbanking-selfcare-service/internal/system/metrics"
	"github.com/wso2/openbanking-selfcare-service/internal/system/security"
)

// Guard authenticates the caller of a request and checks the scopes of an operation.
type Guard interface {
	AuthnAndAuthz(r *http.Request, operation string) (model.User, error)
}

// ConsentProviderInterface defines the interface for the consent provider.
type ConsentProviderInterface interface {
	GetConsentService() service.ConsentServiceInterface
	GetGuard() Guard
}

// ConsentProvider is the default implementation of the ConsentProviderInterface.
type ConsentProvider struct{}

var (
	consentService service.ConsentServiceInterface
	guard          Guard
	mu             sync.RWMutex
)

// NewConsentProvider creates a new instance of ConsentProvider.
func NewConsentProvider() ConsentProviderInterface {
	return &ConsentProvider{}
}

// GetConsentService returns the consent service instance.
func (cp *ConsentProvider) GetConsentService() service.ConsentServiceInterface {
	mu.RLock()
	defer mu.RUnlock()
	return consentService
}

// GetGuard returns the request guard of the consent endpoints.
func (cp *ConsentProvider) GetGuard() Guard {
	mu.RLock()
	defer mu.RUnlock()
	return guard
}

// Initialize builds the consent service and its guard from the runtime configuration.
func Initialize(runtime *config.Runtime, projector service.PermissionProjector, httpClient *http.Client) error {

	cfg := runtime.Config
	location, err := time.LoadLocation(cfg.Portal.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid portal time zone %q: %w", cfg.Portal.TimeZone, err)
	}

	histories := loader.New[model.ConsentHistory]("consent history", loader.Options{
		TTL:          time.Duration(cfg.Portal.HistoryTTLSeconds) * time.Second,
		FetchTimeout: time.Duration(cfg.Portal.HistoryFetchTimeoutSeconds) * time.Second,
		OnComplete:   metrics.RecordHistoryFetch,
	})

	svc := service.NewConsentService(
		client.NewConsentClient(cfg.ConsentBackend, httpClient),
		projector,
		histories,
		service.Options{
			PermissionBindType:      cfg.Portal.PermissionBindType,
			PermissionsAttribute:    cfg.Portal.PermissionsAttribute,
			ExpirationTimeAttribute: cfg.Portal.ExpirationTimeAttribute,
			TenantDomain:            cfg.ConsentBackend.TenantDomain,
			Location:                location,
		})

	authenticator := authn.NewAuthenticator(cfg.AuthServer, client.NewIdentityClient(cfg.AuthServer, httpClient))

	mu.Lock()
	consentService = svc
	guard = security.NewGuard(authenticator, cfg.AuthServer.RequiredScopes)
	mu.Unlock()

	log.GetLogger().Info(fmt.Sprintf("Consent service initialized with %s permission binding",
		cfg.Portal.PermissionBindType))
	return nil
}

// IsInitialized reports whether Initialize has completed.
func IsInitialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return consentService != nil && guard != nil
}
