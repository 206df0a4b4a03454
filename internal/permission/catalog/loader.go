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

import (
	"fmt"
	"os"

	"github.com/wso2/openbanking-selfcare-service/internal/permission/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/errors"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
	"gopkg.in/yaml.v2"
)

// catalogFile is the layout of a permission language override file. Sections left out keep
// their built-in values.
type catalogFile struct {
	Business      []model.PermissionLanguageEntry `yaml:"business"`
	Individual    []model.PermissionLanguageEntry `yaml:"individual"`
	ProfileClaims []model.ProfileClaimGroup       `yaml:"profile_claims"`
}

// Load returns the built-in catalogs, replaced section by section with the content of the
// YAML file at path when one is given.
func Load(path string) (model.CatalogSet, error) {

	set := Default()
	if path == "" {
		return set, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return model.CatalogSet{}, errors.NewServerError(errors.ErrorMessage{
			Code:        errors.LOAD_CATALOG.Code,
			Message:     errors.LOAD_CATALOG.Message,
			Description: fmt.Sprintf("Unable to read catalog file %s.", path),
		}, err)
	}
	return parse(raw, set)
}

func parse(raw []byte, set model.CatalogSet) (model.CatalogSet, error) {

	var file catalogFile
	if err := yaml.UnmarshalStrict(raw, &file); err != nil {
		return model.CatalogSet{}, errors.NewServerError(errors.ErrorMessage{
			Code:        errors.LOAD_CATALOG.Code,
			Message:     errors.LOAD_CATALOG.Message,
			Description: "Catalog file is not valid YAML.",
		}, err)
	}

	logger := log.GetLogger()
	if len(file.Business) > 0 {
		set.Business = model.Catalog{Name: BusinessCatalogName, Entries: file.Business}
		logger.Info(fmt.Sprintf("Loaded %d business permission language entries", len(file.Business)))
	}
	if len(file.Individual) > 0 {
		set.Individual = model.Catalog{Name: IndividualCatalogName, Entries: file.Individual}
		logger.Info(fmt.Sprintf("Loaded %d individual permission language entries", len(file.Individual)))
	}
	if len(file.ProfileClaims) > 0 {
		set.ProfileClaims = file.ProfileClaims
	}

	if err := Validate(set); err != nil {
		return model.CatalogSet{}, err
	}
	return set, nil
}

// Validate checks that scopes are unique within each catalog and that no claim scope belongs
// to two profile categories.
func Validate(set model.CatalogSet) error {

	for _, c := range []model.Catalog{set.Business, set.Individual} {
		seen := make(map[string]bool, len(c.Entries))
		for _, entry := range c.Entries {
			if entry.Scope == "" {
				return invalidCatalog(fmt.Sprintf("Catalog %s has an entry without a scope.", c.Name))
			}
			if seen[entry.Scope] {
				return invalidCatalog(fmt.Sprintf("Scope %s appears more than once in catalog %s.", entry.Scope, c.Name))
			}
			seen[entry.Scope] = true
		}
	}

	owner := make(map[string]string)
	for _, group := range set.ProfileClaims {
		for _, scope := range group.Scopes {
			if other, ok := owner[scope]; ok && other != group.Name {
				return invalidCatalog(fmt.Sprintf("Claim scope %s is mapped to both %s and %s.", scope, other, group.Name))
			}
			owner[scope] = group.Name
		}
	}
	return nil
}

func invalidCatalog(description string) error {
	return errors.NewServerError(errors.ErrorMessage{
		Code:        errors.LOAD_CATALOG.Code,
		Message:     errors.LOAD_CATALOG.Message,
		Description: description,
	}, nil)
}
