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

package managers

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wso2/openbanking-selfcare-service/internal/system/metrics"
	"github.com/wso2/openbanking-selfcare-service/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux      *http.ServeMux
	registry prometheus.Registerer
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, registry prometheus.Registerer) ServiceManagerInterface {

	return &ServiceManager{
		mux:      mux,
		registry: registry,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	metricsHandler, err := metrics.Register(sm.registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	sm.mux.Handle("GET /metrics", metricsHandler)

	services.NewHealthService(sm.mux)
	services.NewConsentService(sm.mux, apiBasePath)
	return nil
}
