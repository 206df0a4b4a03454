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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
	customerrors "github.com/wso2/openbanking-selfcare-service/internal/system/errors"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error. Client errors are
// returned as they are. Anything else is logged and masked as an internal error.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {

	traceID := r.Header.Get(constants.TraceIDHeader)
	if ctxTraceID, ok := r.Context().Value(constants.TraceIDContextKey).(string); ok && ctxTraceID != "" {
		traceID = ctxTraceID
	}

	var clientError *customerrors.ClientError
	if errors.As(err, &clientError) {
		WriteJSON(w, clientError.StatusCode, clientError.Traced(traceID))
		return
	}

	logger := log.GetLogger()
	var serverError *customerrors.ServerError
	if errors.As(err, &serverError) {
		logger.Error(serverError.Message, log.String("code", serverError.Code),
			log.String("description", serverError.Description), log.TraceID(traceID), log.Error(serverError.Err))
		WriteJSON(w, http.StatusInternalServerError, serverError.Masked(traceID))
		return
	}

	logger.Error("Unexpected error while serving request", log.TraceID(traceID), log.Error(err))
	WriteJSON(w, http.StatusInternalServerError, customerrors.ErrorMessage{
		Message:     "Internal server error.",
		Description: "Internal server error.",
		TraceID:     traceID,
	})
}

// WriteJSON writes body as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.GetLogger().Error("Failed to write response body", log.Error(err))
	}
}

// CORS answers preflight requests and sets the allow headers for the configured origins.
// A "*" entry allows any origin.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers",
				strings.Join([]string{"Authorization", "Content-Type", constants.TraceIDHeader}, ", "))
			w.Header().Set("Access-Control-Allow-Methods", "GET, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Expose-Headers", constants.TraceIDHeader)
			w.Header().Add("Vary", "Origin")
		}
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
