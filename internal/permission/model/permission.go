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

// PermissionScope names one disclosable category of data, as issued by the consent backend.
type PermissionScope = string

// PermissionLanguageEntry maps a permission scope to the words shown to the customer.
type PermissionLanguageEntry struct {
	Scope           PermissionScope `json:"scope" yaml:"scope"`
	PermissionScope string          `json:"permission_scope" yaml:"permission_scope"`
	DataCluster     string          `json:"data_cluster" yaml:"data_cluster"`
	Permissions     []string        `json:"permissions" yaml:"permissions"`
}

// Catalog is an ordered permission language table for one customer profile type.
type Catalog struct {
	Name    string                    `json:"name" yaml:"name"`
	Entries []PermissionLanguageEntry `json:"entries" yaml:"entries"`
}

// Find returns the entry for scope.
func (c Catalog) Find(scope PermissionScope) (PermissionLanguageEntry, bool) {
	for _, entry := range c.Entries {
		if entry.Scope == scope {
			return entry, true
		}
	}
	return PermissionLanguageEntry{}, false
}

// ProfileClaimGroup folds a set of identity claim scopes into one profile category.
type ProfileClaimGroup struct {
	Name   string            `json:"name" yaml:"name"`
	Scopes []PermissionScope `json:"scopes" yaml:"scopes"`
}

// CatalogSet is the static permission language configuration of the portal.
type CatalogSet struct {
	Business      Catalog
	Individual    Catalog
	ProfileClaims []ProfileClaimGroup
}

// DataCluster is the display unit produced for a permission scope.
type DataCluster struct {
	Scope       PermissionScope `json:"scope"`
	Label       string          `json:"label"`
	Permissions []string        `json:"permissions"`
}

// AccountPermission binds one permission scope to one account.
type AccountPermission struct {
	AccountID  string          `json:"account_id"`
	Permission PermissionScope `json:"permission"`
}

// AccountDataClusters is the projection of the permissions bound to a single account.
type AccountDataClusters struct {
	AccountID    string        `json:"account_id"`
	DataClusters []DataCluster `json:"data_clusters"`
}
