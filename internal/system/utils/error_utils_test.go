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
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeDecodeError(t *testing.T) {
	decode := func(body string) error {
		var target struct {
			Data []string `json:"data"`
		}
		return json.NewDecoder(strings.NewReader(body)).Decode(&target)
	}

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"nil", nil, ""},
		{"empty body", decode(""), "empty or truncated"},
		{"syntax", decode(`{"data": [}`), "Malformed JSON in consent search response"},
		{"field type", decode(`{"data": "x"}`), "Invalid type for field 'data'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := DescribeDecodeError(tt.err, "consent search")
			if tt.contains == "" {
				assert.Empty(t, msg)
				return
			}
			assert.Contains(t, msg, tt.contains)
		})
	}
}

func TestWrapUpstream(t *testing.T) {
	assert.Nil(t, WrapUpstream(nil, "GET", "https://backend/admin/search"))

	err := WrapUpstream(io.ErrUnexpectedEOF, "GET", "https://backend/admin/search")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "GET https://backend/admin/search: unexpected EOF", err.Error())
}
