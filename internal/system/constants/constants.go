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

package constants

const ApiBasePath = "/api/v1"
const ConsentApiPath = "consents"
const ConfigFile = "/repository/conf/deployment.yaml"

type contextKey string

const TraceIDContextKey contextKey = "trace_id"
const UserContextKey contextKey = "user"

const TraceIDHeader = "X-Trace-ID"

// Operations guarded by scope checks. The values are keys of auth_server.required_scopes.
const (
	OperationViewConsent   = "consent:view"
	OperationRevokeConsent = "consent:revoke"
	OperationViewHistory   = "consent:history"
)

// Consent statuses as reported by the consent backend.
const (
	StatusAuthorised = "authorized"
	StatusExpired    = "expired"
	StatusRevoked    = "revoked"
)

// Customer profile types carried in consent attributes.
const (
	CustomerProfileTypeAttribute = "customerProfileType"
	ConsumerTypeBusiness         = "business-profile"
)

// Consent attribute keys.
const (
	ExpirationDateTimeAttribute = "ExpirationDateTime"
	SharingDurationAttribute    = "sharing_duration_value"
)

// Mapping statuses of consent account mappings.
const (
	MappingStatusActive   = "active"
	MappingStatusInactive = "inactive"
)

// AuthTypePrimaryMember marks the primary member of a sharing arrangement in the user list
// of an amendment record.
const AuthTypePrimaryMember = "primary_member"

// Permission scopes with display rules of their own.
const (
	ScopeName                  = "NAME"
	ScopeBankAccountBasicRead  = "CDRREADACCOUNTSBASIC"
	ScopeBankAccountDetailRead = "CDRREADACCOUNTSDETAILS"
	ScopeCustomerBasicRead     = "READCUSTOMERDETAILSBASIC"
	ScopeCustomerDetailRead    = "READCUSTOMERDETAILS"
)

// Date layouts used by the views.
const (
	DaysHoursLayout = "2006-01-02 03:04:05 PM"
	KeyDateLayout   = "02 Jan 2006"
)
