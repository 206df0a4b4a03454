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
	"github.com/wso2/openbanking-selfcare-service/internal/health_check/service"
)

// HealthCheckProviderInterface defines the interface for the HealthCheck provider.
type HealthCheckProviderInterface interface {
	GetHealthCheckService() service.HealthCheckServiceInterface
}

// HealthCheckProvider is the default implementation of the HealthCheckProviderInterface.
type HealthCheckProvider struct {
	build func() service.HealthCheckServiceInterface
}

// NewHealthCheckProvider creates a provider backed by the runtime configuration.
func NewHealthCheckProvider() HealthCheckProviderInterface {
	return &HealthCheckProvider{build: service.GetHealthCheckService}
}

// NewHealthCheckProviderWith creates a provider that always returns svc.
func NewHealthCheckProviderWith(svc service.HealthCheckServiceInterface) HealthCheckProviderInterface {
	return &HealthCheckProvider{build: func() service.HealthCheckServiceInterface { return svc }}
}

// GetHealthCheckService returns the HealthCheck service instance.
func (cp *HealthCheckProvider) GetHealthCheckService() service.HealthCheckServiceInterface {
	return cp.build()
}
