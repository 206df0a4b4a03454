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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wso2/openbanking-selfcare-service/internal/consent/model"
	permissionModel "github.com/wso2/openbanking-selfcare-service/internal/permission/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
)

// ErrNoAccountsAvailable is returned when no member of an amendment record matches the
// requesting user.
var ErrNoAccountsAvailable = errors.New("no accounts available for the requesting user")

// ErrAmendmentNotFound is returned for an amendment index outside the history.
var ErrAmendmentNotFound = errors.New("amendment not found")

// Projector is the part of the permission projector the reducer needs.
type Projector interface {
	Project(scopes []string, catalog permissionModel.Catalog) []permissionModel.DataCluster
}

// Reducer derives the views of a consent's amendment history.
type Reducer struct {
	projector    Projector
	location     *time.Location
	tenantDomain string
}

func NewReducer(projector Projector, location *time.Location, tenantDomain string) *Reducer {
	if location == nil {
		location = time.UTC
	}
	return &Reducer{
		projector:    projector,
		location:     location,
		tenantDomain: tenantDomain,
	}
}

// Summarize lists the amendments in the order the backend delivered them.
func (r *Reducer) Summarize(records []model.AmendmentRecord) []model.AmendmentSummary {

	summaries := make([]model.AmendmentSummary, 0, len(records))
	for i, record := range records {
		summaries = append(summaries, r.summary(i, record))
	}
	return summaries
}

// Reduce builds the view of the amendment at index for user.
func (r *Reducer) Reduce(records []model.AmendmentRecord, index int, user model.User,
	catalog permissionModel.Catalog) (model.AmendmentView, error) {

	if index < 0 || index >= len(records) {
		return model.AmendmentView{}, ErrAmendmentNotFound
	}
	record := records[index]
	snapshot := record.PreviousConsentData

	accounts, err := ResolveAccounts(snapshot.UserList, user, r.tenantDomain)
	if err != nil {
		return model.AmendmentView{}, err
	}

	return model.AmendmentView{
		AmendmentSummary:       r.summary(index, record),
		Accounts:               accounts,
		SharingDuration:        FormatSharingDuration(snapshot.SharingDuration),
		SharingDurationSeconds: snapshot.SharingDuration,
		DataClusters:           r.projector.Project(snapshot.Permissions, catalog),
	}, nil
}

func (r *Reducer) summary(index int, record model.AmendmentRecord) model.AmendmentSummary {
	return model.AmendmentSummary{
		Index:       index,
		AmendedTime: record.AmendedTime,
		AmendedAt:   FormatAmendedTime(record.AmendedTime, r.location),
		ReasonCode:  record.AmendedReason,
		Reason:      AmendedReasonLabel(record.AmendedReason),
	}
}

// ResolveAccounts returns the accounts of the arrangement member matching user. Officers see
// the primary member's accounts. Other users are matched on their email, with or without the
// tenant domain suffix.
func ResolveAccounts(users []model.AccountUser, user model.User, tenantDomain string) ([]string, error) {

	for _, member := range users {
		if matches(member, user, tenantDomain) {
			return append([]string{}, member.AccountList...), nil
		}
	}
	log.GetLogger().Debug(fmt.Sprintf("No arrangement member matched user %s among %d members", user.Email, len(users)))
	return nil, ErrNoAccountsAvailable
}

func matches(member model.AccountUser, user model.User, tenantDomain string) bool {

	if user.IsOfficer {
		return member.AuthType == constants.AuthTypePrimaryMember
	}
	if user.Email == "" {
		return false
	}
	memberID := model.User{Email: member.UserID}.QualifiedID(tenantDomain)
	return member.UserID == user.Email || strings.EqualFold(memberID, user.QualifiedID(tenantDomain))
}
