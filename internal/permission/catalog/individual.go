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

package catalog

import "github.com/wso2/openbanking-selfcare-service/internal/permission/model"

// Individual returns the permission language shown to individual customers. It differs from
// the business catalog only in the customer details clusters.
func Individual() model.Catalog {
	entries := make([]model.PermissionLanguageEntry, 0, 20)
	for _, entry := range Business().Entries {
		switch entry.Scope {
		case "READCUSTOMERDETAILSBASIC":
			entry.DataCluster = "Name and occupation"
			entry.Permissions = []string{"Name", "Occupation"}
		case "READCUSTOMERDETAILS":
			entry.DataCluster = "Name, occupation, contact details"
			entry.Permissions = []string{
				"Name",
				"Occupation",
				"Phone",
				"Email address",
				"Mail address",
				"Residential address",
			}
		}
		entries = append(entries, entry)
	}
	return model.Catalog{Name: IndividualCatalogName, Entries: entries}
}
