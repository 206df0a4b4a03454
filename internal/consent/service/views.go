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
	"strings"

	"github.com/wso2/openbanking-selfcare-service/internal/consent/model"
	permissionModel "github.com/wso2/openbanking-selfcare-service/internal/permission/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
)

var statusLabels = map[string]string{
	constants.StatusAuthorised: "Active",
	constants.StatusExpired:    "Expired",
	constants.StatusRevoked:    "Withdrawn",
}

// StatusLabel returns the display label of a consent status. Unknown statuses are shown as is.
func StatusLabel(status string) string {
	if label, ok := statusLabels[normalizeStatus(status)]; ok {
		return label
	}
	return status
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func dataSharedLabel(status string) string {
	if status == constants.StatusAuthorised {
		return "Data we are sharing"
	}
	return "Data we shared"
}

func applicationName(appInfo model.AppInfo, clientID string) string {
	if info, ok := appInfo[clientID]; ok {
		if name := info.DisplayName(); name != "" {
			return name
		}
	}
	return clientID
}

// activeAccounts returns the ids of the accounts with an active mapping, each once, in the
// order they first appear.
func activeAccounts(consent model.Consent) []string {

	seen := make(map[string]bool)
	accounts := []string{}
	for _, mapping := range consent.ConsentMappingResources {
		if mapping.MappingStatus != constants.MappingStatusActive || seen[mapping.AccountID] {
			continue
		}
		seen[mapping.AccountID] = true
		accounts = append(accounts, mapping.AccountID)
	}
	return accounts
}

// accountPermissions lists every (account, permission) pair of the consent regardless of
// mapping status, so revoked and expired consents still show what was shared.
func accountPermissions(consent model.Consent) []permissionModel.AccountPermission {

	pairs := make([]permissionModel.AccountPermission, 0, len(consent.ConsentMappingResources))
	for _, mapping := range consent.ConsentMappingResources {
		if mapping.Permission == "" {
			continue
		}
		pairs = append(pairs, permissionModel.AccountPermission{
			AccountID:  mapping.AccountID,
			Permission: mapping.Permission,
		})
	}
	return pairs
}

// consentDocument exposes a consent to attribute path lookups such as
// "receipt.accountData.permissions" or "consentAttributes.ExpirationDateTime".
func consentDocument(consent model.Consent) map[string]interface{} {

	attributes := make(map[string]interface{}, len(consent.ConsentAttributes))
	for k, v := range consent.ConsentAttributes {
		attributes[k] = v
	}
	return map[string]interface{}{
		"consentId":         consent.ConsentID,
		"clientId":          consent.ClientID,
		"currentStatus":     consent.CurrentStatus,
		"createdTimestamp":  consent.CreatedTimestamp,
		"updatedTimestamp":  consent.UpdatedTimestamp,
		"validityPeriod":    consent.ValidityPeriod,
		"receipt":           consent.ReceiptData(),
		"consentAttributes": attributes,
	}
}
