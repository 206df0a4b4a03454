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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/openbanking-selfcare-service/internal/permission/catalog"
	"github.com/wso2/openbanking-selfcare-service/internal/permission/model"
)

func TestReloadableProjector_Replace(t *testing.T) {
	r := NewReloadableProjector(catalog.Default())

	individual := r.SelectCatalog("")
	clusters := r.Project([]string{"CDRREADTRANSACTION"}, individual)
	require.Len(t, clusters, 1)
	assert.Equal(t, "Transaction details", clusters[0].Label)

	renamed := catalog.Default()
	renamed.Individual = model.Catalog{
		Name: renamed.Individual.Name,
		Entries: []model.PermissionLanguageEntry{
			{Scope: "CDRREADTRANSACTION", DataCluster: "Your transactions", Permissions: []string{"Amounts"}},
		},
	}
	r.Replace(renamed)

	clusters = r.Project([]string{"CDRREADTRANSACTION"}, r.SelectCatalog(""))
	require.Len(t, clusters, 1)
	assert.Equal(t, "Your transactions", clusters[0].Label)

	perAccount := r.ProjectPerAccount([]model.AccountPermission{{AccountID: "acc-1", Permission: "CDRREADTRANSACTION"}},
		r.SelectCatalog(""))
	require.Len(t, perAccount, 1)
	assert.Equal(t, "Your transactions", perAccount[0].DataClusters[0].Label)
}
