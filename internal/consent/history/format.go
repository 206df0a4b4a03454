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

package history

import (
	"fmt"
	"time"

	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

var amendedReasonLabels = map[string]string{
	"ConsentAmendmentFlow": "Consent Amendment",
	"ConsentRevocation":    "Consent Revocation",
	"ConsentExpiration":    "Consent Expiration",
	"JAMAccountWithdrawal": "Joint Account Withdrawal",
}

// FormatSharingDuration renders a sharing duration given in seconds. Only the coarsest non
// zero unit is used: "D Days", else "H Hours M Minutes", else "M Minutes". Leftover seconds
// are dropped, so anything under a minute renders as "".
func FormatSharingDuration(seconds int64) string {

	if seconds <= 0 {
		return ""
	}
	days := seconds / secondsPerDay
	hours := (seconds % secondsPerDay) / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute

	switch {
	case days > 0:
		return fmt.Sprintf("%d Days", days)
	case hours > 0:
		return fmt.Sprintf("%d Hours %d Minutes", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%d Minutes", minutes)
	default:
		return ""
	}
}

// AmendedReasonLabel returns the display label of an amendment reason. Unknown reasons are
// shown as they are.
func AmendedReasonLabel(reason string) string {
	if label, ok := amendedReasonLabels[reason]; ok {
		return label
	}
	return reason
}

// FormatAmendedTime renders epoch seconds in the given location.
func FormatAmendedTime(epochSeconds int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(epochSeconds, 0).In(loc).Format(constants.DaysHoursLayout)
}
