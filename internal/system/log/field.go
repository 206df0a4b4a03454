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

package log

// Field is a key-value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field {

	return Field{Key: key, Value: value}
}

func Any(key string, value interface{}) Field {

	return Field{Key: key, Value: value}
}

func Error(value error) Field {

	return Field{Key: "error", Value: value}
}

// TraceID creates the trace id field attached to request scoped log lines.
func TraceID(value string) Field {

	return Field{Key: "trace_id", Value: value}
}

// ConsentID names the consent a log line is about.
func ConsentID(value string) Field {

	return Field{Key: "consent_id", Value: value}
}

// StatusCode records the HTTP status an upstream call answered with.
func StatusCode(value int) Field {

	return Field{Key: "status_code", Value: value}
}
