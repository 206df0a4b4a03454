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
	"fmt"

	"github.com/wso2/openbanking-selfcare-service/internal/permission/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
	"github.com/wso2/openbanking-selfcare-service/internal/system/metrics"
)

// Projector turns permission scope lists into the data clusters shown to a customer. It holds
// no mutable state and is safe for concurrent use.
type Projector struct {
	catalogs        model.CatalogSet
	claimToCategory map[string]string
	categories      map[string]bool
}

func NewProjector(catalogs model.CatalogSet) *Projector {

	p := &Projector{
		catalogs:        catalogs,
		claimToCategory: make(map[string]string),
		categories:      make(map[string]bool, len(catalogs.ProfileClaims)),
	}
	for _, group := range catalogs.ProfileClaims {
		p.categories[group.Name] = true
		for _, scope := range group.Scopes {
			p.claimToCategory[scope] = group.Name
		}
	}
	return p
}

// Normalize applies the detail policy, the profile claim consolidation and then the detail
// policy again.
func (p *Projector) Normalize(scopes []string) []string {
	return ApplyDetailPolicy(p.ConsolidateProfileClaims(ApplyDetailPolicy(scopes)))
}

// SelectCatalog picks the catalog for a customer profile type. Anything other than a
// business profile, including an absent type, gets the individual catalog.
func (p *Projector) SelectCatalog(customerProfileType string) model.Catalog {
	if customerProfileType == constants.ConsumerTypeBusiness {
		return p.catalogs.Business
	}
	return p.catalogs.Individual
}

// Project normalizes scopes and maps each surviving scope, in order, to its catalog entry.
// A scope is shown once however often it recurs. Scopes with no entry are left out.
func (p *Projector) Project(scopes []string, catalog model.Catalog) []model.DataCluster {

	clusters := make([]model.DataCluster, 0, len(scopes))
	seen := make(map[string]bool, len(scopes))
	dropped := 0
	for _, scope := range p.Normalize(scopes) {
		if seen[scope] {
			continue
		}
		seen[scope] = true

		entry, ok := catalog.Find(scope)
		if !ok {
			log.GetLogger().Debug(fmt.Sprintf("No permission language entry for scope %s in %s catalog", scope, catalog.Name))
			dropped++
			continue
		}
		clusters = append(clusters, model.DataCluster{
			Scope:       entry.Scope,
			Label:       entry.DataCluster,
			Permissions: append([]string{}, entry.Permissions...),
		})
	}
	metrics.RecordProjection(catalog.Name, dropped)
	return clusters
}

// ProjectPerAccount groups permissions by account, in order of first appearance, and projects
// each account's permissions on their own.
func (p *Projector) ProjectPerAccount(pairs []model.AccountPermission, catalog model.Catalog) []model.AccountDataClusters {

	var order []string
	grouped := make(map[string][]string)
	for _, pair := range pairs {
		if _, ok := grouped[pair.AccountID]; !ok {
			order = append(order, pair.AccountID)
		}
		grouped[pair.AccountID] = append(grouped[pair.AccountID], pair.Permission)
	}

	result := make([]model.AccountDataClusters, 0, len(order))
	for _, accountID := range order {
		result = append(result, model.AccountDataClusters{
			AccountID:    accountID,
			DataClusters: p.Project(grouped[accountID], catalog),
		})
	}
	return result
}
