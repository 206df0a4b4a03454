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
	"sync/atomic"

	"github.com/wso2/openbanking-selfcare-service/internal/permission/model"
)

// ReloadableProjector serves projections from the catalogs it was last given. Replacing the
// catalogs does not disturb projections already in progress.
type ReloadableProjector struct {
	current atomic.Pointer[Projector]
}

func NewReloadableProjector(catalogs model.CatalogSet) *ReloadableProjector {
	r := &ReloadableProjector{}
	r.Replace(catalogs)
	return r
}

// Replace swaps in a projector built from catalogs.
func (r *ReloadableProjector) Replace(catalogs model.CatalogSet) {
	r.current.Store(NewProjector(catalogs))
}

func (r *ReloadableProjector) SelectCatalog(customerProfileType string) model.Catalog {
	return r.current.Load().SelectCatalog(customerProfileType)
}

func (r *ReloadableProjector) Project(scopes []string, catalog model.Catalog) []model.DataCluster {
	return r.current.Load().Project(scopes, catalog)
}

func (r *ReloadableProjector) ProjectPerAccount(pairs []model.AccountPermission,
	catalog model.Catalog) []model.AccountDataClusters {
	return r.current.Load().ProjectPerAccount(pairs, catalog)
}
