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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
)

// LookupPath walks a decoded JSON document along a dotted path such as
// "receipt.accountData.permissions" and returns the value found there.
func LookupPath(root map[string]interface{}, path string) (interface{}, bool) {

	if root == nil || path == "" {
		return nil, false
	}
	var current interface{} = root
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// CoerceToStrings converts a JSON value to a list of strings. A single string is split on
// whitespace so that space-delimited scope strings are accepted as well.
func CoerceToStrings(value interface{}) []string {

	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		return append([]string{}, v...)
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
				continue
			}
			log.GetLogger().Debug(fmt.Sprintf("Skipping non string list item of type %T", item))
		}
		return result
	case string:
		return strings.Fields(v)
	default:
		log.GetLogger().Debug(fmt.Sprintf("Cannot coerce type %T to a string list", v))
		return []string{}
	}
}

// CoerceToInt64 converts a JSON number, or a numeric string, to an int64.
func CoerceToInt64(value interface{}) (int64, bool) {

	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// CoerceToTime reads a timestamp given either as epoch seconds or as an RFC 3339 string.
func CoerceToTime(value interface{}) (time.Time, bool) {

	if seconds, ok := CoerceToInt64(value); ok {
		return time.Unix(seconds, 0), true
	}
	s, ok := value.(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
