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

package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/wso2/openbanking-selfcare-service/internal/consent/loader"
	"github.com/wso2/openbanking-selfcare-service/internal/consent/model"
	"github.com/wso2/openbanking-selfcare-service/internal/consent/provider"
	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
	"github.com/wso2/openbanking-selfcare-service/internal/system/errors"
	"github.com/wso2/openbanking-selfcare-service/internal/system/pagination"
	"github.com/wso2/openbanking-selfcare-service/internal/system/utils"
)

type ConsentHandler struct {
	provider provider.ConsentProviderInterface
}

func NewConsentHandler(consentProvider provider.ConsentProviderInterface) *ConsentHandler {
	return &ConsentHandler{provider: consentProvider}
}

// SearchConsents handles GET /consents
func (h *ConsentHandler) SearchConsents(w http.ResponseWriter, r *http.Request) {

	user, err := h.provider.GetGuard().AuthnAndAuthz(r, constants.OperationViewConsent)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}

	limit, err := pagination.ParseLimit(r)
	if err != nil {
		utils.HandleError(w, r, invalidSearchParams(err))
		return
	}
	offset, err := pagination.ParseOffset(r)
	if err != nil {
		utils.HandleError(w, r, invalidSearchParams(err))
		return
	}

	query := r.URL.Query()
	criteria := model.SearchCriteria{
		ConsentIDs:      splitList(query.Get("consentIDs")),
		UserIDs:         splitList(query.Get("userIDs")),
		ClientIDs:       splitList(query.Get("clientIDs")),
		ConsentStatuses: splitList(query.Get("consentStatuses")),
		ConsentTypes:    splitList(query.Get("consentTypes")),
		Limit:           limit,
		Offset:          offset,
	}

	view, err := h.provider.GetConsentService().SearchConsents(r.Context(), criteria, user)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

// GetConsent handles GET /consents/{consentId}
func (h *ConsentHandler) GetConsent(w http.ResponseWriter, r *http.Request) {

	user, err := h.provider.GetGuard().AuthnAndAuthz(r, constants.OperationViewConsent)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}

	view, err := h.provider.GetConsentService().GetConsentDetails(r.Context(), r.PathValue("consentId"), user)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

// GetWithdrawalPreview handles GET /consents/{consentId}/withdrawal
func (h *ConsentHandler) GetWithdrawalPreview(w http.ResponseWriter, r *http.Request) {

	user, err := h.provider.GetGuard().AuthnAndAuthz(r, constants.OperationViewConsent)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}

	preview, err := h.provider.GetConsentService().GetWithdrawalPreview(r.Context(), r.PathValue("consentId"), user)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, preview)
}

// RevokeConsent handles DELETE /consents/{consentId}
func (h *ConsentHandler) RevokeConsent(w http.ResponseWriter, r *http.Request) {

	user, err := h.provider.GetGuard().AuthnAndAuthz(r, constants.OperationRevokeConsent)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}

	result, err := h.provider.GetConsentService().RevokeConsent(r.Context(), r.PathValue("consentId"), user)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	if !result.Revoked {
		utils.WriteJSON(w, http.StatusBadGateway, result)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// GetConsentHistory handles GET /consents/{consentId}/history
func (h *ConsentHandler) GetConsentHistory(w http.ResponseWriter, r *http.Request) {

	user, err := h.provider.GetGuard().AuthnAndAuthz(r, constants.OperationViewHistory)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}

	view, err := h.provider.GetConsentService().GetConsentHistory(r.Context(), r.PathValue("consentId"), user)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}

	status := http.StatusOK
	switch loader.State(view.State) {
	case loader.StateLoading:
		status = http.StatusAccepted
	case loader.StateFailed:
		status = http.StatusBadGateway
	}
	utils.WriteJSON(w, status, view)
}

// GetAmendment handles GET /consents/{consentId}/history/{index}
func (h *ConsentHandler) GetAmendment(w http.ResponseWriter, r *http.Request) {

	user, err := h.provider.GetGuard().AuthnAndAuthz(r, constants.OperationViewHistory)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		utils.HandleError(w, r, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: fmt.Sprintf("Invalid amendment index %q.", r.PathValue("index")),
		}, http.StatusBadRequest))
		return
	}

	view, err := h.provider.GetConsentService().GetAmendment(r.Context(), r.PathValue("consentId"), index, user)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

func splitList(raw string) []string {
	var values []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func invalidSearchParams(err error) error {
	return errors.NewClientError(errors.ErrorMessage{
		Code:        errors.INVALID_SEARCH_PARAMS.Code,
		Message:     errors.INVALID_SEARCH_PARAMS.Message,
		Description: err.Error(),
	}, http.StatusBadRequest)
}
