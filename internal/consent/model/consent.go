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

package model

import (
	"bytes"
	"encoding/json"
)

// Consent is a data sharing consent as returned by the consent management admin API.
type Consent struct {
	ConsentID               string                  `json:"consentId"`
	ClientID                string                  `json:"clientId"`
	ConsentType             string                  `json:"consentType"`
	CurrentStatus           string                  `json:"currentStatus"`
	CreatedTimestamp        int64                   `json:"createdTimestamp"`
	UpdatedTimestamp        int64                   `json:"updatedTimestamp"`
	ValidityPeriod          int64                   `json:"validityPeriod"`
	Receipt                 json.RawMessage         `json:"receipt,omitempty"`
	ConsentAttributes       map[string]string       `json:"consentAttributes,omitempty"`
	ConsentMappingResources []ConsentMapping        `json:"consentMappingResources,omitempty"`
	AuthorizationResources  []AuthorizationResource `json:"authorizationResources,omitempty"`
}

// ConsentMapping binds an account, and in per-account mode a permission, to a consent.
type ConsentMapping struct {
	MappingID       string `json:"mappingId,omitempty"`
	AuthorizationID string `json:"authorizationId,omitempty"`
	AccountID       string `json:"accountId"`
	Permission      string `json:"permission,omitempty"`
	MappingStatus   string `json:"mappingStatus"`
}

type AuthorizationResource struct {
	AuthorizationID     string `json:"authorizationId"`
	UserID              string `json:"userId"`
	AuthorizationStatus string `json:"authorizationStatus,omitempty"`
	AuthorizationType   string `json:"authorizationType,omitempty"`
}

// ReceiptData decodes the consent receipt. The backend sends the receipt either as a JSON
// object or as a string holding one; both are accepted. An unreadable receipt yields nil.
func (c Consent) ReceiptData() map[string]interface{} {

	raw := bytes.TrimSpace(c.Receipt)
	if len(raw) == 0 {
		return nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil
		}
		raw = []byte(inner)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}
	return data
}

// Attribute returns a consent attribute, or "" when absent.
func (c Consent) Attribute(key string) string {
	if c.ConsentAttributes == nil {
		return ""
	}
	return c.ConsentAttributes[key]
}

// SearchCriteria filters the consent search of the admin API.
type SearchCriteria struct {
	ConsentIDs      []string
	UserIDs         []string
	ClientIDs       []string
	ConsentStatuses []string
	ConsentTypes    []string
	Limit           int
	Offset          int
}

type SearchMetadata struct {
	Count  int `json:"count"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}

type ConsentSearchResult struct {
	Data     []Consent      `json:"data"`
	Metadata SearchMetadata `json:"metadata"`
}
