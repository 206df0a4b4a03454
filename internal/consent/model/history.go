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

import "encoding/json"

// ConsentHistory is the amendment history of one consent, newest record first.
type ConsentHistory struct {
	CdrArrangementID        string            `json:"cdrArrangementId"`
	CurrentConsent          json.RawMessage   `json:"currentConsent,omitempty"`
	ConsentAmendmentHistory []AmendmentRecord `json:"consentAmendmentHistory"`
}

// AmendmentRecord is a snapshot of a consent taken when it was amended.
type AmendmentRecord struct {
	AmendedReason       string              `json:"amendedReason"`
	AmendedTime         int64               `json:"amendedTime"`
	PreviousConsentData PreviousConsentData `json:"previousConsentData"`
}

type PreviousConsentData struct {
	Permissions     []string      `json:"permissions"`
	SharingDuration int64         `json:"sharingDuration"`
	UserList        []AccountUser `json:"userList"`
}

// AccountUser lists the accounts one member of the arrangement shared.
type AccountUser struct {
	UserID      string   `json:"userId"`
	AuthType    string   `json:"authType"`
	AccountList []string `json:"accountList"`
}
