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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_AppliesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("addr:\n  host: localhost\n"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Addr.Host)
	assert.Equal(t, 8080, cfg.Addr.Port)
	assert.Equal(t, "INFO", cfg.Log.LogLevel)
	assert.Equal(t, "customerCareOfficer", cfg.AuthServer.OfficerRole)
	assert.Equal(t, "/admin/consent-amendment-history", cfg.ConsentBackend.HistoryPath)
	assert.Equal(t, "carbon.super", cfg.ConsentBackend.TenantDomain)
	assert.Equal(t, BindSamePermissionSetForAllAccounts, cfg.Portal.PermissionBindType)
	assert.Equal(t, "receipt.accountData.permissions", cfg.Portal.PermissionsAttribute)
	assert.Equal(t, 300, cfg.Portal.HistoryTTLSeconds)
}

func TestParseConfig_ExpandsEnvironment(t *testing.T) {
	t.Setenv("SCP_BACKEND_URL", "https://obiam:9446/api/openbanking/consent")
	t.Setenv("SCP_CLIENT_SECRET", "s3cret")

	raw := `
consent_backend:
  base_url: ${SCP_BACKEND_URL}
auth_server:
  client_secret: ${SCP_CLIENT_SECRET}
  required_scopes:
    consent:view: ["consents:read_self"]
portal:
  permission_bind_type: DifferentPermissionsForEachAccount
`
	cfg, err := ParseConfig([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, "https://obiam:9446/api/openbanking/consent", cfg.ConsentBackend.BaseURL)
	assert.Equal(t, "s3cret", cfg.AuthServer.ClientSecret)
	assert.Equal(t, []string{"consents:read_self"}, cfg.AuthServer.RequiredScopes["consent:view"])
	assert.Equal(t, BindDifferentPermissionsForEachAccount, cfg.Portal.PermissionBindType)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), "repository/conf/deployment.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_ReadsFromHome(t *testing.T) {
	home := t.TempDir()
	confDir := filepath.Join(home, "repository", "conf")
	require.NoError(t, os.MkdirAll(confDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "deployment.yaml"), []byte("addr:\n  port: 9090\n"), 0o600))

	cfg, err := LoadConfig(home, "repository/conf/deployment.yaml")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Addr.Port)
}
