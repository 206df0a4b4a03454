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

package context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
)

func serveTraced(header string) (string, string) {
	var seen string
	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetTraceID(r.Context())
	}))
	r := httptest.NewRequest(http.MethodGet, "/api/v1/consents", nil)
	if header != "" {
		r.Header.Set(constants.TraceIDHeader, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	return seen, rec.Header().Get(constants.TraceIDHeader)
}

func TestTraceMiddleware_KeepsCallerTraceID(t *testing.T) {
	seen, echoed := serveTraced("portal-4f2a.17")
	assert.Equal(t, "portal-4f2a.17", seen)
	assert.Equal(t, "portal-4f2a.17", echoed)
}

func TestTraceMiddleware_ReplacesUnusableTraceID(t *testing.T) {
	for _, header := range []string{"", "abc def", "x\"><script>", strings.Repeat("a", 65)} {
		seen, echoed := serveTraced(header)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err, "header %q", header)
		assert.Equal(t, seen, echoed)
	}
}

func TestGetTraceID_Absent(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
}
