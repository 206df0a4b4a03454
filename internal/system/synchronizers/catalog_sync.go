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

package synchronizers

import (
	"fmt"
	"os"
	"time"

	"github.com/wso2/openbanking-selfcare-service/internal/permission/catalog"
	"github.com/wso2/openbanking-selfcare-service/internal/permission/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
)

// SyncCatalogs reloads the catalog override file when it changed after lastModified, and
// hands the new catalogs to apply. It returns the modification time it has seen. A file that
// fails to load leaves the current catalogs in place.
func SyncCatalogs(path string, lastModified time.Time, apply func(model.CatalogSet)) (time.Time, error) {
	logger := log.GetLogger()

	info, err := os.Stat(path)
	if err != nil {
		return lastModified, fmt.Errorf("failed to stat catalog file %s: %w", path, err)
	}
	if !info.ModTime().After(lastModified) {
		return lastModified, nil
	}

	catalogs, err := catalog.Load(path)
	if err != nil {
		return lastModified, err
	}
	apply(catalogs)
	logger.Info("Permission language catalogs reloaded", log.String("file", path))
	return info.ModTime(), nil
}
