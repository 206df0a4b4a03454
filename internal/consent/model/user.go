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

import "strings"

// User is the authenticated caller of the portal.
type User struct {
	Email       string   `json:"email"`
	Roles       []string `json:"roles,omitempty"`
	IsOfficer   bool     `json:"is_officer"`
	AccessToken string   `json:"-"`
}

// QualifiedID returns the user id with the tenant domain suffix the consent backend expects.
func (u User) QualifiedID(tenantDomain string) string {
	suffix := "@" + tenantDomain
	if tenantDomain == "" || strings.HasSuffix(u.Email, suffix) {
		return u.Email
	}
	return u.Email + suffix
}

// ApplicationInfo is the registration metadata of a data recipient application.
type ApplicationInfo struct {
	ClientName string `json:"client_name,omitempty"`
	SoftwareID string `json:"software_id,omitempty"`
	OrgName    string `json:"org_name,omitempty"`
	LogoURI    string `json:"logo_uri,omitempty"`
}

// DisplayName returns the client name, falling back to the software id.
func (a ApplicationInfo) DisplayName() string {
	if a.ClientName != "" {
		return a.ClientName
	}
	return a.SoftwareID
}

// DataRecipientName returns the organisation name, falling back to the software id.
func (a ApplicationInfo) DataRecipientName() string {
	if a.OrgName != "" {
		return a.OrgName
	}
	return a.SoftwareID
}

// AppInfo maps client ids to their application metadata.
type AppInfo map[string]ApplicationInfo
