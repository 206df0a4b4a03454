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

import permissionModel "github.com/wso2/openbanking-selfcare-service/internal/permission/model"

// ConsentSummary is one row of the consent list.
type ConsentSummary struct {
	ConsentID       string `json:"consent_id"`
	ClientID        string `json:"client_id"`
	ConsentType     string `json:"consent_type"`
	ApplicationName string `json:"application_name"`
	Status          string `json:"status"`
	StatusLabel     string `json:"status_label"`
	ConsentedDate   string `json:"consented_date,omitempty"`
	ExpiryDate      string `json:"expiry_date,omitempty"`
	WithdrawnDate   string `json:"withdrawn_date,omitempty"`
}

type ConsentListView struct {
	Consents []ConsentSummary `json:"consents"`
	Metadata SearchMetadata   `json:"metadata"`
}

// KeyDate is a titled date, date range or text shown on the consent details page.
type KeyDate struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

type ConsentDetailView struct {
	ConsentID           string                                `json:"consent_id"`
	ClientID            string                                `json:"client_id"`
	ApplicationName     string                                `json:"application_name"`
	DataRecipientName   string                                `json:"data_recipient_name,omitempty"`
	LogoURI             string                                `json:"logo_uri,omitempty"`
	Status              string                                `json:"status"`
	StatusLabel         string                                `json:"status_label"`
	Revocable           bool                                  `json:"revocable"`
	KeyDates            []KeyDate                             `json:"key_dates"`
	Accounts            []string                              `json:"accounts"`
	DataSharedLabel     string                                `json:"data_shared_label"`
	DataClusters        []permissionModel.DataCluster         `json:"data_clusters,omitempty"`
	AccountDataClusters []permissionModel.AccountDataClusters `json:"account_data_clusters,omitempty"`
}

// WithdrawalPreview lists what an application stops receiving once the consent is withdrawn.
type WithdrawalPreview struct {
	ConsentID           string                                `json:"consent_id"`
	ApplicationName     string                                `json:"application_name"`
	DataClusters        []permissionModel.DataCluster         `json:"data_clusters,omitempty"`
	AccountDataClusters []permissionModel.AccountDataClusters `json:"account_data_clusters,omitempty"`
}

type RevocationResult struct {
	ConsentID  string `json:"consent_id"`
	Revoked    bool   `json:"revoked"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message"`
}

// AmendmentSummary is one row of the amendment history table.
type AmendmentSummary struct {
	Index       int    `json:"index"`
	AmendedTime int64  `json:"amended_time"`
	AmendedAt   string `json:"amended_at"`
	ReasonCode  string `json:"reason_code"`
	Reason      string `json:"reason"`
}

// AmendmentView is the consent as it stood before one amendment.
type AmendmentView struct {
	AmendmentSummary
	Accounts               []string                      `json:"accounts"`
	SharingDuration        string                        `json:"sharing_duration"`
	SharingDurationSeconds int64                         `json:"sharing_duration_seconds"`
	DataClusters           []permissionModel.DataCluster `json:"data_clusters"`
}

type HistoryView struct {
	ConsentID  string             `json:"consent_id"`
	State      string             `json:"state"`
	Message    string             `json:"message,omitempty"`
	Amendments []AmendmentSummary `json:"amendments"`
}
