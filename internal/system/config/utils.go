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

package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

const (
	BindSamePermissionSetForAllAccounts    = "SamePermissionSetForAllAccounts"
	BindDifferentPermissionsForEachAccount = "DifferentPermissionsForEachAccount"
)

// LoadConfig reads the deployment file under home, expanding ${VAR} references from the
// environment, and fills in defaults for the values that were left out.
func LoadConfig(home, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(home, filePath))
	if err != nil {
		return nil, err
	}
	return ParseConfig(file)
}

// ParseConfig parses a deployment document.
func ParseConfig(raw []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(raw))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {

	if cfg.Addr.Port == 0 {
		cfg.Addr.Port = 8080
	}
	if cfg.Log.LogLevel == "" {
		cfg.Log.LogLevel = "INFO"
	}
	if cfg.AuthServer.OfficerRole == "" {
		cfg.AuthServer.OfficerRole = "customerCareOfficer"
	}
	if cfg.AuthServer.RoleClaim == "" {
		cfg.AuthServer.RoleClaim = "roles"
	}

	backend := &cfg.ConsentBackend
	if backend.SearchPath == "" {
		backend.SearchPath = "/admin/search"
	}
	if backend.HistoryPath == "" {
		backend.HistoryPath = "/admin/consent-amendment-history"
	}
	if backend.RevokePath == "" {
		backend.RevokePath = "/admin/revoke"
	}
	if backend.ApplicationInfoPath == "" {
		backend.ApplicationInfoPath = "/admin/application-info"
	}
	if backend.TenantDomain == "" {
		backend.TenantDomain = "carbon.super"
	}
	if backend.TimeoutSeconds <= 0 {
		backend.TimeoutSeconds = 30
	}

	portal := &cfg.Portal
	if portal.PermissionBindType == "" {
		portal.PermissionBindType = BindSamePermissionSetForAllAccounts
	}
	if portal.PermissionsAttribute == "" {
		portal.PermissionsAttribute = "receipt.accountData.permissions"
	}
	if portal.ExpirationTimeAttribute == "" {
		portal.ExpirationTimeAttribute = "receipt.Data.expirationDateTime"
	}
	if portal.HistoryTTLSeconds <= 0 {
		portal.HistoryTTLSeconds = 300
	}
	if portal.HistoryFetchTimeoutSeconds <= 0 {
		portal.HistoryFetchTimeoutSeconds = 30
	}
	if portal.TimeZone == "" {
		portal.TimeZone = "UTC"
	}
}
