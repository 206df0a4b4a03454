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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/openbanking-selfcare-service/internal/permission/catalog"
	"github.com/wso2/openbanking-selfcare-service/internal/permission/model"
)

func newTestProjector() *Projector {
	return NewProjector(catalog.Default())
}

func labels(clusters []model.DataCluster) []string {
	result := make([]string, 0, len(clusters))
	for _, c := range clusters {
		result = append(result, c.Label)
	}
	return result
}

func TestApplyDetailPolicy(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"account detail removes basic", []string{"CDRREADACCOUNTSBASIC", "CDRREADACCOUNTSDETAILS"}, []string{"CDRREADACCOUNTSDETAILS"}},
		{"customer detail removes basic", []string{"READCUSTOMERDETAILS", "READCUSTOMERDETAILSBASIC"}, []string{"READCUSTOMERDETAILS"}},
		{"categories are independent", []string{"CDRREADACCOUNTSBASIC", "READCUSTOMERDETAILS", "READCUSTOMERDETAILSBASIC"}, []string{"CDRREADACCOUNTSBASIC", "READCUSTOMERDETAILS"}},
		{"basic alone is kept", []string{"CDRREADACCOUNTSBASIC", "CDRREADPAYEES"}, []string{"CDRREADACCOUNTSBASIC", "CDRREADPAYEES"}},
		{"empty", []string{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyDetailPolicy(tt.input))
		})
	}
}

func TestApplyDetailPolicy_DoesNotMutateInput(t *testing.T) {
	input := []string{"CDRREADACCOUNTSBASIC", "CDRREADACCOUNTSDETAILS"}
	_ = ApplyDetailPolicy(input)
	assert.Equal(t, []string{"CDRREADACCOUNTSBASIC", "CDRREADACCOUNTSDETAILS"}, input)
}

func TestConsolidateProfileClaims(t *testing.T) {
	p := newTestProjector()
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"email and phone claims", []string{"EMAIL", "PHONENUMBER"}, []string{"EMAIL_PHONE"}},
		{"name claims collapse to NAME", []string{"GIVENNAME", "FAMILYNAME", "PROFILE"}, []string{"NAME"}},
		{"name stays out of the contact key", []string{"EMAIL", "NAME", "ADDRESS"}, []string{"NAME", "EMAIL_MAIL"}},
		{"other scopes keep their order", []string{"CDRREADPAYEES", "PHONENUMBERVERIFIED", "CDRREADTRANSACTION"}, []string{"CDRREADPAYEES", "CDRREADTRANSACTION", "PHONE"}},
		{"repeated category recorded once", []string{"EMAIL", "EMAILVERIFIED"}, []string{"EMAIL"}},
		{"no claims", []string{"CDRREADPAYEES"}, []string{"CDRREADPAYEES"}},
		{"contact key is folded back", []string{"MAIL_PHONE", "EMAIL"}, []string{"EMAIL_MAIL_PHONE"}},
		{"unknown composite is kept", []string{"FOO_BAR"}, []string{"FOO_BAR"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.ConsolidateProfileClaims(tt.input))
		})
	}
}

func permutations(items []string) [][]string {
	if len(items) <= 1 {
		return [][]string{append([]string{}, items...)}
	}
	var result [][]string
	for i := range items {
		rest := make([]string, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, perm := range permutations(rest) {
			result = append(result, append([]string{items[i]}, perm...))
		}
	}
	return result
}

func TestConsolidateProfileClaims_ContactKeyIsSortedForEveryOrder(t *testing.T) {
	p := newTestProjector()
	claimFor := map[string]string{"EMAIL": "EMAILVERIFIED", "MAIL": "ADDRESS", "PHONE": "PHONENUMBER"}

	subsets := [][]string{
		{"EMAIL"}, {"MAIL"}, {"PHONE"},
		{"EMAIL", "MAIL"}, {"EMAIL", "PHONE"}, {"MAIL", "PHONE"},
		{"EMAIL", "MAIL", "PHONE"},
	}
	for _, subset := range subsets {
		expectedKey := strings.Join(subset, "_")
		for _, perm := range permutations(subset) {
			claims := make([]string, 0, len(perm)+1)
			for _, category := range perm {
				claims = append(claims, claimFor[category])
			}
			claims = append(claims, "GIVENNAME")

			got := p.ConsolidateProfileClaims(claims)
			assert.Equal(t, []string{"NAME", expectedKey}, got, "claims %v", claims)
		}
	}
}

func TestConsolidateProfileClaims_CategoryNamesAreFolded(t *testing.T) {
	p := newTestProjector()

	// Bare category names and contact keys fold like claims, so a normalized
	// list reads back the same.
	assert.Equal(t, []string{"EMAIL_MAIL"}, p.ConsolidateProfileClaims([]string{"MAIL", "EMAIL"}))
	assert.Equal(t, []string{"EMAIL_MAIL"}, p.Normalize([]string{"MAIL", "EMAIL"}))
	assert.Equal(t, []string{"EMAIL_MAIL_PHONE"}, p.ConsolidateProfileClaims([]string{"EMAIL_PHONE", "MAIL"}))
}

func TestNormalize_Idempotent(t *testing.T) {
	p := newTestProjector()
	inputs := [][]string{
		{},
		{"CDRREADACCOUNTSBASIC", "CDRREADACCOUNTSDETAILS", "EMAIL", "PHONENUMBER"},
		{"READCUSTOMERDETAILSBASIC", "READCUSTOMERDETAILS", "NAME", "ADDRESS", "UNKNOWN"},
		{"PROFILE", "EMAILVERIFIED", "PHONENUMBERVERIFIED", "ADDRESS", "CDRREADPAYMENTS"},
		{"EMAIL_PHONE", "MAIL"},
	}
	for _, input := range inputs {
		once := p.Normalize(input)
		assert.Equal(t, once, p.Normalize(once), "input %v", input)
		assert.Equal(t, p.Project(input, catalog.Business()), p.Project(once, catalog.Business()), "input %v", input)
	}
}

func TestProject_DetailSupersedesBasic(t *testing.T) {
	p := newTestProjector()
	clusters := p.Project([]string{"CDRREADACCOUNTSBASIC", "CDRREADACCOUNTSDETAILS"}, catalog.Business())
	assert.Equal(t, []string{"Account balance and details"}, labels(clusters))
}

func TestProject_ContactDetails(t *testing.T) {
	p := newTestProjector()
	clusters := p.Project([]string{"EMAIL", "PHONENUMBER"}, catalog.Business())

	require.Len(t, clusters, 1)
	assert.Equal(t, "EMAIL_PHONE", clusters[0].Scope)
	assert.Equal(t, "Contact Details", clusters[0].Label)
	assert.Equal(t, []string{"Email address", "Phone number"}, clusters[0].Permissions)
}

func TestProject_EmptyInput(t *testing.T) {
	p := newTestProjector()
	for _, input := range [][]string{nil, {}} {
		clusters := p.Project(input, catalog.Business())
		assert.NotNil(t, clusters)
		assert.Empty(t, clusters)
	}
}

func TestProject_UnmatchedScopeIsDropped(t *testing.T) {
	p := newTestProjector()
	clusters := p.Project([]string{"NOT_A_SCOPE", "CDRREADPAYEES", "openid"}, catalog.Individual())
	assert.Equal(t, []string{"Saved payees"}, labels(clusters))
}

func TestProject_RecurringScopeShownOnce(t *testing.T) {
	p := newTestProjector()
	clusters := p.Project([]string{"CDRREADPAYEES", "CDRREADTRANSACTION", "CDRREADPAYEES"}, catalog.Business())
	assert.Equal(t, []string{"Saved payees", "Transaction details"}, labels(clusters))
}

func TestProject_SharedLabelsStaySeparate(t *testing.T) {
	p := newTestProjector()
	// ReadAccountsDetail and ReadBalances share permissions but are distinct scopes.
	clusters := p.Project([]string{"ReadAccountsDetail", "ReadBalances"}, catalog.Business())
	require.Len(t, clusters, 2)
	assert.Equal(t, clusters[0].Permissions, clusters[1].Permissions)
	assert.NotEqual(t, clusters[0].Scope, clusters[1].Scope)
}

func TestProject_ReturnedPermissionsAreCopies(t *testing.T) {
	p := newTestProjector()
	business := catalog.Business()
	clusters := p.Project([]string{"CDRREADPAYMENTS"}, business)
	require.Len(t, clusters, 1)

	clusters[0].Permissions[0] = "changed"
	entry, _ := business.Find("CDRREADPAYMENTS")
	assert.Equal(t, "Direct debits", entry.Permissions[0])
}

func TestSelectCatalog(t *testing.T) {
	p := newTestProjector()
	tests := []struct {
		profileType string
		expected    string
	}{
		{"business-profile", catalog.BusinessCatalogName},
		{"individual-profile", catalog.IndividualCatalogName},
		{"", catalog.IndividualCatalogName},
		{"Business-Profile", catalog.IndividualCatalogName},
	}
	for _, tt := range tests {
		t.Run(tt.profileType, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.SelectCatalog(tt.profileType).Name)
		})
	}
}

func TestProjectPerAccount(t *testing.T) {
	p := newTestProjector()
	pairs := []model.AccountPermission{
		{AccountID: "acc-2", Permission: "CDRREADACCOUNTSBASIC"},
		{AccountID: "acc-1", Permission: "CDRREADACCOUNTSBASIC"},
		{AccountID: "acc-2", Permission: "CDRREADACCOUNTSDETAILS"},
		{AccountID: "acc-1", Permission: "EMAIL"},
	}

	result := p.ProjectPerAccount(pairs, catalog.Business())

	require.Len(t, result, 2)
	assert.Equal(t, "acc-2", result[0].AccountID)
	assert.Equal(t, []string{"Account balance and details"}, labels(result[0].DataClusters))
	// The detail scope of acc-2 does not hide the basic scope of acc-1.
	assert.Equal(t, "acc-1", result[1].AccountID)
	assert.Equal(t, []string{"Account name, type and balance", "Contact Details"}, labels(result[1].DataClusters))
}

func TestProjectPerAccount_Empty(t *testing.T) {
	p := newTestProjector()
	result := p.ProjectPerAccount(nil, catalog.Business())
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
