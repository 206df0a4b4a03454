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

// Profile categories.
const (
	CategoryName  = "NAME"
	CategoryEmail = "EMAIL"
	CategoryMail  = "MAIL"
	CategoryPhone = "PHONE"
)

// ProfileClaims returns the table that folds identity claim scopes into profile categories.
func ProfileClaims() []model.ProfileClaimGroup {
	return []model.ProfileClaimGroup{
		{Name: CategoryName, Scopes: []string{"PROFILE", "NAME", "GIVENNAME", "FAMILYNAME", "UPDATEDAT"}},
		{Name: CategoryEmail, Scopes: []string{"EMAIL", "EMAILVERIFIED"}},
		{Name: CategoryMail, Scopes: []string{"ADDRESS"}},
		{Name: CategoryPhone, Scopes: []string{"PHONENUMBER", "PHONENUMBERVERIFIED"}},
	}
}

// Default returns the built-in catalog set.
func Default() model.CatalogSet {
	return model.CatalogSet{
		Business:      Business(),
		Individual:    Individual(),
		ProfileClaims: ProfileClaims(),
	}
}
