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

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckReadiness(t *testing.T) {
	tests := []struct {
		name       string
		ready      bool
		backendURL string
		wantErr    string
	}{
		{"ready", true, "https://obiam:9446/api/openbanking/consent", ""},
		{"consent service not wired", false, "https://obiam:9446", "consent service not initialized"},
		{"no backend", true, "", "consent backend base url not configured"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &HealthCheckService{
				consentReady: func() bool { return tt.ready },
				backendURL:   func() string { return tt.backendURL },
			}
			err := svc.CheckReadiness()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
