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

package errors

const errorPrefix = "SCP-"

var (
	// Server error codes

	SEARCH_CONSENTS = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while searching consents.",
	}

	FETCH_CONSENT_HISTORY = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching consent amendment history.",
	}

	REVOKE_CONSENT = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while revoking consent.",
	}

	FETCH_APPLICATION_INFO = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while fetching application information.",
	}

	INTROSPECTION_FAILED = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while introspecting the access token.",
	}

	UNMARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while un-marshalling JSON.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while parsing the token.",
	}

	LOAD_CATALOG = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while loading the permission language catalog.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "10001",
		Message: "Bad request.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "10002",
		Message:     "Unauthorized.",
		Description: "Missing or invalid access token.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "10003",
		Message:     "Forbidden.",
		Description: "Do not have permission to perform this operation.",
	}

	CONSENT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10004",
		Message: "Consent not found.",
	}

	CONSENT_NOT_REVOCABLE = ErrorMessage{
		Code:    errorPrefix + "10005",
		Message: "Consent cannot be withdrawn.",
	}

	CONSENT_HISTORY_UNAVAILABLE = ErrorMessage{
		Code:    errorPrefix + "10006",
		Message: "Consent history is unavailable.",
	}

	AMENDMENT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10007",
		Message: "Consent amendment not found.",
	}

	NO_ACCOUNTS_AVAILABLE = ErrorMessage{
		Code:    errorPrefix + "10008",
		Message: "No accounts available.",
	}

	INVALID_SEARCH_PARAMS = ErrorMessage{
		Code:    errorPrefix + "10009",
		Message: "Invalid search parameters.",
	}

	UPSTREAM_UNAVAILABLE = ErrorMessage{
		Code:    errorPrefix + "10010",
		Message: "Consent service is unavailable.",
	}
)
