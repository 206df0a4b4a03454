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

package schedulers

import (
	"context"
	"time"

	"github.com/wso2/openbanking-selfcare-service/internal/permission/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
	"github.com/wso2/openbanking-selfcare-service/internal/system/synchronizers"
)

// StartCatalogReloadScheduler checks the catalog override file every interval until ctx ends.
// loadedAt is the modification time of the file as loaded at startup.
func StartCatalogReloadScheduler(ctx context.Context, path string, loadedAt time.Time, interval time.Duration,
	apply func(model.CatalogSet)) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger := log.GetLogger()
	seen := loadedAt
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			modified, err := synchronizers.SyncCatalogs(path, seen, apply)
			if err != nil {
				logger.Error("Failed to reload permission language catalogs", log.Error(err))
				continue
			}
			seen = modified
		}
	}
}
