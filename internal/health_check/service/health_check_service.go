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

package service

import (
	"errors"

	consentProvider "github.com/wso2/openbanking-selfcare-service/internal/consent/provider"
	"github.com/wso2/openbanking-selfcare-service/internal/system/config"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
)

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness() error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct {
	consentReady func() bool
	backendURL   func() string
}

// GetHealthCheckService returns a new instance.
func GetHealthCheckService() HealthCheckServiceInterface {
	return &HealthCheckService{
		consentReady: consentProvider.IsInitialized,
		backendURL: func() string {
			return config.GetRuntime().Config.ConsentBackend.BaseURL
		},
	}
}

// CheckReadiness reports the server ready once the consent service is wired and a consent
// backend is configured.
func (h *HealthCheckService) CheckReadiness() error {
	logger := log.GetLogger()
	if logger == nil {
		return errors.New("logger not initialized")
	}
	if !h.consentReady() {
		return errors.New("consent service not initialized")
	}
	if h.backendURL() == "" {
		return errors.New("consent backend base url not configured")
	}
	return nil
}
