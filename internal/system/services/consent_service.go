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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/openbanking-selfcare-service/internal/consent/handler"
	"github.com/wso2/openbanking-selfcare-service/internal/consent/provider"
	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
)

type ConsentService struct {
	handler *handler.ConsentHandler
}

func NewConsentService(mux *http.ServeMux, apiBasePath string) *ConsentService {
	instance := &ConsentService{
		handler: handler.NewConsentHandler(provider.NewConsentProvider()),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *ConsentService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	base := fmt.Sprintf("%s/%s", apiBasePath, constants.ConsentApiPath)
	mux.HandleFunc(fmt.Sprintf("GET %s", base), s.handler.SearchConsents)
	mux.HandleFunc(fmt.Sprintf("GET %s/{consentId}", base), s.handler.GetConsent)
	mux.HandleFunc(fmt.Sprintf("GET %s/{consentId}/withdrawal", base), s.handler.GetWithdrawalPreview)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/{consentId}", base), s.handler.RevokeConsent)
	mux.HandleFunc(fmt.Sprintf("GET %s/{consentId}/history", base), s.handler.GetConsentHistory)
	mux.HandleFunc(fmt.Sprintf("GET %s/{consentId}/history/{index}", base), s.handler.GetAmendment)
}
