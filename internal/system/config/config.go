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

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AuthConfig struct {
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type AuthServerConfig struct {
	IntrospectionEndpoint string              `yaml:"introspection_endpoint"`
	ClientID              string              `yaml:"client_id"`
	ClientSecret          string              `yaml:"client_secret"`
	ExpectedAudience      string              `yaml:"expected_audience"`
	RequiredScopes        map[string][]string `yaml:"required_scopes"`
	OfficerRole           string              `yaml:"officer_role"`
	RoleClaim             string              `yaml:"role_claim"`
}

// ConsentBackendConfig points at the consent management admin API of the open banking server.
type ConsentBackendConfig struct {
	BaseURL             string `yaml:"base_url"`
	SearchPath          string `yaml:"search_path"`
	HistoryPath         string `yaml:"history_path"`
	RevokePath          string `yaml:"revoke_path"`
	ApplicationInfoPath string `yaml:"application_info_path"`
	TenantDomain        string `yaml:"tenant_domain"`
	TimeoutSeconds      int    `yaml:"timeout_seconds"`
}

type TLSConfig struct {
	CertDir       string `yaml:"cert_dir"`
	TrustStore    string `yaml:"trust_store"`
	MTLSEnabled   bool   `yaml:"mtls_enabled"`
	PublicCert    string `yaml:"public_cert"`
	PrivateKey    string `yaml:"private_key"`
	SkipTLSVerify bool   `yaml:"skip_tls_verify"`
}

// PortalConfig holds the static choices the self-care views are rendered with.
type PortalConfig struct {
	PermissionBindType         string `yaml:"permission_bind_type"`
	PermissionsAttribute       string `yaml:"permissions_attribute"`
	ExpirationTimeAttribute    string `yaml:"expiration_time_attribute"`
	HistoryTTLSeconds          int    `yaml:"history_ttl_seconds"`
	HistoryFetchTimeoutSeconds int    `yaml:"history_fetch_timeout_seconds"`
	TimeZone                   string `yaml:"time_zone"`
	CatalogFile                string `yaml:"catalog_file"`
	CatalogReloadSeconds       int    `yaml:"catalog_reload_seconds"`
}

type Config struct {
	Addr           AddrConfig           `yaml:"addr"`
	Log            LogConfig            `yaml:"log"`
	Auth           AuthConfig           `yaml:"auth"`
	AuthServer     AuthServerConfig     `yaml:"auth_server"`
	ConsentBackend ConsentBackendConfig `yaml:"consent_backend"`
	TLS            TLSConfig            `yaml:"tls"`
	Portal         PortalConfig         `yaml:"portal"`
}
