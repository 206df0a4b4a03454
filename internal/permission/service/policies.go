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
	"slices"
	"strings"

	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
)

const compositeSeparator = "_"

// detailSupersedes lists, per category, the detailed read scope and the basic scope it covers.
var detailSupersedes = []struct {
	detail string
	basic  string
}{
	{detail: constants.ScopeBankAccountDetailRead, basic: constants.ScopeBankAccountBasicRead},
	{detail: constants.ScopeCustomerDetailRead, basic: constants.ScopeCustomerBasicRead},
}

// ApplyDetailPolicy removes a basic read scope when the detailed read scope of the same
// category is present. The input slice is left untouched.
func ApplyDetailPolicy(scopes []string) []string {

	result := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		if isSupersededBasic(scope, scopes) {
			continue
		}
		result = append(result, scope)
	}
	return result
}

func isSupersededBasic(scope string, scopes []string) bool {
	for _, rule := range detailSupersedes {
		if scope == rule.basic && slices.Contains(scopes, rule.detail) {
			return true
		}
	}
	return false
}

// ConsolidateProfileClaims folds identity claim scopes into their profile categories. Other
// scopes keep their relative order. NAME is appended as a scope of its own and the remaining
// categories are joined, sorted, into one contact key such as EMAIL_PHONE.
func (p *Projector) ConsolidateProfileClaims(scopes []string) []string {

	result := make([]string, 0, len(scopes))
	matched := make([]string, 0, len(p.categories))
	record := func(category string) {
		if !slices.Contains(matched, category) {
			matched = append(matched, category)
		}
	}

	for _, scope := range scopes {
		if categories, ok := p.claimCategories(scope); ok {
			for _, category := range categories {
				record(category)
			}
			continue
		}
		result = append(result, scope)
	}

	slices.Sort(matched)
	var contact []string
	for _, category := range matched {
		if category == constants.ScopeName {
			result = append(result, constants.ScopeName)
			continue
		}
		contact = append(contact, category)
	}
	if len(contact) > 0 {
		result = append(result, strings.Join(contact, compositeSeparator))
	}
	return result
}

// claimCategories resolves a scope to the profile categories it stands for. Claim scopes,
// category names and contact keys built from category names are all recognised.
func (p *Projector) claimCategories(scope string) ([]string, bool) {

	if category, ok := p.claimToCategory[scope]; ok {
		return []string{category}, true
	}
	if p.categories[scope] {
		return []string{scope}, true
	}
	if !strings.Contains(scope, compositeSeparator) {
		return nil, false
	}
	parts := strings.Split(scope, compositeSeparator)
	for _, part := range parts {
		if part == constants.ScopeName || !p.categories[part] {
			return nil, false
		}
	}
	return parts, true
}
