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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wso2/openbanking-selfcare-service/internal/consent/history"
	"github.com/wso2/openbanking-selfcare-service/internal/consent/loader"
	"github.com/wso2/openbanking-selfcare-service/internal/consent/model"
	permissionModel "github.com/wso2/openbanking-selfcare-service/internal/permission/model"
	"github.com/wso2/openbanking-selfcare-service/internal/system/config"
	"github.com/wso2/openbanking-selfcare-service/internal/system/constants"
	systemContext "github.com/wso2/openbanking-selfcare-service/internal/system/context"
	errors2 "github.com/wso2/openbanking-selfcare-service/internal/system/errors"
	"github.com/wso2/openbanking-selfcare-service/internal/system/log"
	"github.com/wso2/openbanking-selfcare-service/internal/system/metrics"
	"github.com/wso2/openbanking-selfcare-service/internal/system/utils"
)

const (
	HistoryLoadingMessage = "Loading..."
	HistoryFailedMessage  = "Failed to fetch consent history data, Try again later"
	HistoryAbsentMessage  = "No consent history data found"

	RevokeSuccessMessage = "Consent withdrawn successfully from "
	RevokeFailedMessage  = "Failed to withdraw consent, try again later"
)

// ConsentBackend is the consent management admin API.
type ConsentBackend interface {
	SearchConsents(ctx context.Context, criteria model.SearchCriteria, user model.User) (model.ConsentSearchResult, error)
	GetConsentHistory(ctx context.Context, consentID string, user model.User) (model.ConsentHistory, error)
	RevokeConsent(ctx context.Context, clientID, consentID string, user model.User) (int, error)
	GetApplicationInfo(ctx context.Context, clientIDs []string, user model.User) (model.AppInfo, error)
}

// PermissionProjector turns permission scopes into the data clusters shown to the user.
type PermissionProjector interface {
	SelectCatalog(customerProfileType string) permissionModel.Catalog
	Project(scopes []string, catalog permissionModel.Catalog) []permissionModel.DataCluster
	ProjectPerAccount(pairs []permissionModel.AccountPermission, catalog permissionModel.Catalog) []permissionModel.AccountDataClusters
}

type HistoryLoader interface {
	Trigger(ctx context.Context, key string, fetch loader.FetchFunc[model.ConsentHistory]) loader.Snapshot[model.ConsentHistory]
	Reset(key string)
}

// ConsentServiceInterface defines the service interface.
type ConsentServiceInterface interface {
	SearchConsents(ctx context.Context, criteria model.SearchCriteria, user model.User) (model.ConsentListView, error)
	GetConsentDetails(ctx context.Context, consentID string, user model.User) (model.ConsentDetailView, error)
	GetWithdrawalPreview(ctx context.Context, consentID string, user model.User) (model.WithdrawalPreview, error)
	RevokeConsent(ctx context.Context, consentID string, user model.User) (model.RevocationResult, error)
	GetConsentHistory(ctx context.Context, consentID string, user model.User) (model.HistoryView, error)
	GetAmendment(ctx context.Context, consentID string, index int, user model.User) (model.AmendmentView, error)
}

// Options are the portal settings the views are rendered with.
type Options struct {
	PermissionBindType      string
	PermissionsAttribute    string
	ExpirationTimeAttribute string
	TenantDomain            string
	Location                *time.Location
}

// ConsentService is the default implementation.
type ConsentService struct {
	backend   ConsentBackend
	projector PermissionProjector
	reducer   *history.Reducer
	histories HistoryLoader
	options   Options
	now       func() time.Time
}

func NewConsentService(backend ConsentBackend, projector PermissionProjector, histories HistoryLoader,
	options Options) *ConsentService {

	if options.Location == nil {
		options.Location = time.UTC
	}
	if options.PermissionBindType == "" {
		options.PermissionBindType = config.BindSamePermissionSetForAllAccounts
	}
	return &ConsentService{
		backend:   backend,
		projector: projector,
		reducer:   history.NewReducer(projector, options.Location, options.TenantDomain),
		histories: histories,
		options:   options,
		now:       time.Now,
	}
}

// SearchConsents lists the consents of the user with their status labels and application names.
func (cs *ConsentService) SearchConsents(ctx context.Context, criteria model.SearchCriteria,
	user model.User) (model.ConsentListView, error) {

	result, err := cs.backend.SearchConsents(ctx, criteria, user)
	if err != nil {
		return model.ConsentListView{}, err
	}
	appInfo := cs.applicationInfo(ctx, result.Data, user)

	summaries := make([]model.ConsentSummary, 0, len(result.Data))
	for _, consent := range result.Data {
		status := cs.effectiveStatus(consent)
		summary := model.ConsentSummary{
			ConsentID:       consent.ConsentID,
			ClientID:        consent.ClientID,
			ConsentType:     consent.ConsentType,
			ApplicationName: applicationName(appInfo, consent.ClientID),
			Status:          status,
			StatusLabel:     StatusLabel(status),
			ConsentedDate:   cs.formatEpoch(consent.CreatedTimestamp),
		}
		if status == constants.StatusRevoked {
			summary.WithdrawnDate = cs.formatEpoch(consent.UpdatedTimestamp)
		} else if expiry, ok := cs.expiryTime(consent); ok {
			summary.ExpiryDate = cs.formatTime(expiry)
		}
		summaries = append(summaries, summary)
	}

	return model.ConsentListView{Consents: summaries, Metadata: result.Metadata}, nil
}

// GetConsentDetails builds the details page of a consent.
func (cs *ConsentService) GetConsentDetails(ctx context.Context, consentID string,
	user model.User) (model.ConsentDetailView, error) {

	consent, err := cs.getConsent(ctx, consentID, user)
	if err != nil {
		return model.ConsentDetailView{}, err
	}
	appInfo := cs.applicationInfo(ctx, []model.Consent{consent}, user)
	app := appInfo[consent.ClientID]
	status := cs.effectiveStatus(consent)

	view := model.ConsentDetailView{
		ConsentID:         consent.ConsentID,
		ClientID:          consent.ClientID,
		ApplicationName:   applicationName(appInfo, consent.ClientID),
		DataRecipientName: app.DataRecipientName(),
		LogoURI:           app.LogoURI,
		Status:            status,
		StatusLabel:       StatusLabel(status),
		Revocable:         status == constants.StatusAuthorised,
		KeyDates:          cs.keyDates(consent, status),
		Accounts:          []string{},
		DataSharedLabel:   dataSharedLabel(status),
	}

	catalog := cs.projector.SelectCatalog(consent.Attribute(constants.CustomerProfileTypeAttribute))
	if cs.perAccount() {
		view.AccountDataClusters = cs.projector.ProjectPerAccount(accountPermissions(consent), catalog)
	} else {
		view.Accounts = activeAccounts(consent)
		view.DataClusters = cs.projector.Project(cs.permissions(consent), catalog)
	}
	return view, nil
}

// GetWithdrawalPreview lists the data an application stops receiving once the consent is
// withdrawn. Only active consents can be withdrawn.
func (cs *ConsentService) GetWithdrawalPreview(ctx context.Context, consentID string,
	user model.User) (model.WithdrawalPreview, error) {

	consent, err := cs.getConsent(ctx, consentID, user)
	if err != nil {
		return model.WithdrawalPreview{}, err
	}
	if cs.effectiveStatus(consent) != constants.StatusAuthorised {
		return model.WithdrawalPreview{}, notRevocableError(consentID, http.StatusNotFound)
	}

	appInfo := cs.applicationInfo(ctx, []model.Consent{consent}, user)
	preview := model.WithdrawalPreview{
		ConsentID:       consent.ConsentID,
		ApplicationName: applicationName(appInfo, consent.ClientID),
	}
	catalog := cs.projector.SelectCatalog(consent.Attribute(constants.CustomerProfileTypeAttribute))
	if cs.perAccount() {
		preview.AccountDataClusters = cs.projector.ProjectPerAccount(accountPermissions(consent), catalog)
	} else {
		preview.DataClusters = cs.projector.Project(cs.permissions(consent), catalog)
	}
	return preview, nil
}

// RevokeConsent withdraws an active consent. The backend answering 204 is the only success;
// any other answer, or a failed call, is reported as a failed revocation and is not retried.
func (cs *ConsentService) RevokeConsent(ctx context.Context, consentID string,
	user model.User) (model.RevocationResult, error) {

	logger := log.FromContext(ctx)
	consent, err := cs.getConsent(ctx, consentID, user)
	if err != nil {
		return model.RevocationResult{}, err
	}
	if cs.effectiveStatus(consent) != constants.StatusAuthorised {
		return model.RevocationResult{}, notRevocableError(consentID, http.StatusConflict)
	}

	result := model.RevocationResult{ConsentID: consentID, Message: RevokeFailedMessage}
	status, err := cs.backend.RevokeConsent(ctx, consent.ClientID, consentID, user)
	result.StatusCode = status
	switch {
	case err != nil:
		logger.Warn("Revoking consent failed", log.ConsentID(consentID), log.Error(err))
	case status == http.StatusNoContent:
		appInfo := cs.applicationInfo(ctx, []model.Consent{consent}, user)
		result.Revoked = true
		result.Message = RevokeSuccessMessage + applicationName(appInfo, consent.ClientID)
		cs.histories.Reset(historyKey(consentID, user))
	default:
		logger.Warn("Consent backend rejected the revocation", log.ConsentID(consentID), log.StatusCode(status))
	}

	metrics.RecordRevocation(result.Revoked)
	logger.Audit(log.AuditEvent{
		InitiatorID:   user.Email,
		InitiatorType: initiatorType(user),
		TargetID:      consentID,
		TargetType:    log.TargetTypeConsent,
		ActionID:      log.ActionRevokeConsent,
		TraceID:       systemContext.GetTraceID(ctx),
		Data:          map[string]interface{}{"revoked": result.Revoked, "status": status},
	})
	return result, nil
}

// GetConsentHistory returns the amendment history of a consent as far as it has been loaded.
// A history that is still loading comes back with the loading state and no amendments.
func (cs *ConsentService) GetConsentHistory(ctx context.Context, consentID string,
	user model.User) (model.HistoryView, error) {

	snapshot := cs.loadHistory(ctx, consentID, user)
	view := model.HistoryView{
		ConsentID:  consentID,
		State:      string(snapshot.State),
		Amendments: []model.AmendmentSummary{},
	}

	switch snapshot.State {
	case loader.StateLoaded:
		view.Amendments = cs.reducer.Summarize(snapshot.Data.ConsentAmendmentHistory)
		if len(view.Amendments) == 0 {
			view.Message = HistoryAbsentMessage
		}
	case loader.StateFailed:
		view.Message = HistoryFailedMessage
	default:
		view.Message = HistoryLoadingMessage
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   user.Email,
		InitiatorType: initiatorType(user),
		TargetID:      consentID,
		TargetType:    log.TargetTypeConsentHistory,
		ActionID:      log.ActionViewConsentHistory,
		TraceID:       systemContext.GetTraceID(ctx),
		Data:          map[string]interface{}{"state": view.State},
	})
	return view, nil
}

// GetAmendment returns the consent as it stood before the amendment at index.
func (cs *ConsentService) GetAmendment(ctx context.Context, consentID string, index int,
	user model.User) (model.AmendmentView, error) {

	snapshot := cs.loadHistory(ctx, consentID, user)
	switch snapshot.State {
	case loader.StateLoaded:
	case loader.StateFailed:
		return model.AmendmentView{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.CONSENT_HISTORY_UNAVAILABLE.Code,
			Message:     errors2.CONSENT_HISTORY_UNAVAILABLE.Message,
			Description: HistoryFailedMessage,
		}, http.StatusBadGateway)
	default:
		return model.AmendmentView{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.CONSENT_HISTORY_UNAVAILABLE.Code,
			Message:     errors2.CONSENT_HISTORY_UNAVAILABLE.Message,
			Description: HistoryLoadingMessage,
		}, http.StatusServiceUnavailable)
	}

	profileType, err := cs.customerProfileType(ctx, consentID, snapshot.Data, user)
	if err != nil {
		return model.AmendmentView{}, err
	}
	catalog := cs.projector.SelectCatalog(profileType)

	view, err := cs.reducer.Reduce(snapshot.Data.ConsentAmendmentHistory, index, user, catalog)
	switch {
	case errors.Is(err, history.ErrAmendmentNotFound):
		return model.AmendmentView{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.AMENDMENT_NOT_FOUND.Code,
			Message:     errors2.AMENDMENT_NOT_FOUND.Message,
			Description: fmt.Sprintf("Consent %s has no amendment at index %d.", consentID, index),
		}, http.StatusNotFound)
	case errors.Is(err, history.ErrNoAccountsAvailable):
		return model.AmendmentView{}, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.NO_ACCOUNTS_AVAILABLE.Code,
			Message:     errors2.NO_ACCOUNTS_AVAILABLE.Message,
			Description: "No accounts of this amendment are shared by the requesting user.",
		}, http.StatusNotFound)
	case err != nil:
		return model.AmendmentView{}, err
	}
	return view, nil
}

func (cs *ConsentService) loadHistory(ctx context.Context, consentID string,
	user model.User) loader.Snapshot[model.ConsentHistory] {

	return cs.histories.Trigger(ctx, historyKey(consentID, user), func(ctx context.Context) (model.ConsentHistory, error) {
		return cs.backend.GetConsentHistory(ctx, consentID, user)
	})
}

// customerProfileType reads the profile type of the current consent, from the history when
// the backend sent it along and from a consent search otherwise.
func (cs *ConsentService) customerProfileType(ctx context.Context, consentID string,
	data model.ConsentHistory, user model.User) (string, error) {

	if len(data.CurrentConsent) > 0 {
		var current model.Consent
		if err := json.Unmarshal(data.CurrentConsent, &current); err == nil {
			return current.Attribute(constants.CustomerProfileTypeAttribute), nil
		}
		log.GetLogger().Debug(fmt.Sprintf("Unreadable current consent in the history of %s", consentID))
	}
	consent, err := cs.getConsent(ctx, consentID, user)
	if err != nil {
		return "", err
	}
	return consent.Attribute(constants.CustomerProfileTypeAttribute), nil
}

func (cs *ConsentService) getConsent(ctx context.Context, consentID string, user model.User) (model.Consent, error) {

	result, err := cs.backend.SearchConsents(ctx, model.SearchCriteria{ConsentIDs: []string{consentID}, Limit: 1}, user)
	if err != nil {
		return model.Consent{}, err
	}
	for _, consent := range result.Data {
		if consent.ConsentID == consentID {
			return consent, nil
		}
	}
	return model.Consent{}, errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.CONSENT_NOT_FOUND.Code,
		Message:     errors2.CONSENT_NOT_FOUND.Message,
		Description: fmt.Sprintf("Consent %s not found.", consentID),
	}, http.StatusNotFound)
}

// applicationInfo fetches the metadata of the applications behind consents. The lists still
// render with client ids when the lookup fails.
func (cs *ConsentService) applicationInfo(ctx context.Context, consents []model.Consent, user model.User) model.AppInfo {

	seen := make(map[string]bool)
	clientIDs := make([]string, 0, len(consents))
	for _, consent := range consents {
		if consent.ClientID != "" && !seen[consent.ClientID] {
			seen[consent.ClientID] = true
			clientIDs = append(clientIDs, consent.ClientID)
		}
	}

	info, err := cs.backend.GetApplicationInfo(ctx, clientIDs, user)
	if err != nil {
		log.FromContext(ctx).Warn("Failed to fetch application information", log.Error(err))
		return model.AppInfo{}
	}
	return info
}

// permissions reads the permission scopes of a consent from the configured attribute path.
func (cs *ConsentService) permissions(consent model.Consent) []string {
	value, ok := utils.LookupPath(consentDocument(consent), cs.options.PermissionsAttribute)
	if !ok {
		return []string{}
	}
	return utils.CoerceToStrings(value)
}

// effectiveStatus is the backend status, except for an authorised consent whose expiration
// time has passed, which is reported as expired.
func (cs *ConsentService) effectiveStatus(consent model.Consent) string {

	status := normalizeStatus(consent.CurrentStatus)
	if status != constants.StatusAuthorised || cs.options.ExpirationTimeAttribute == "" {
		return status
	}
	value, ok := utils.LookupPath(consentDocument(consent), cs.options.ExpirationTimeAttribute)
	if !ok {
		return status
	}
	if expiry, ok := utils.CoerceToTime(value); ok && expiry.Before(cs.now()) {
		return constants.StatusExpired
	}
	return status
}

// expiryTime is the ExpirationDateTime attribute, falling back to the validity period.
func (cs *ConsentService) expiryTime(consent model.Consent) (time.Time, bool) {
	if t, ok := utils.CoerceToTime(consent.Attribute(constants.ExpirationDateTimeAttribute)); ok {
		return t, true
	}
	if consent.ValidityPeriod > 0 {
		return time.Unix(consent.ValidityPeriod, 0), true
	}
	return time.Time{}, false
}

func (cs *ConsentService) keyDates(consent model.Consent, status string) []model.KeyDate {

	created := cs.formatEpoch(consent.CreatedTimestamp)
	switch status {
	case constants.StatusAuthorised:
		validUntil := cs.formatEpoch(consent.ValidityPeriod)
		return []model.KeyDate{
			{Title: "You granted consent on", Value: created},
			{Title: "Your consent will expire on", Value: validUntil},
			{Title: "Sharing period", Value: created + " - " + validUntil},
			{Title: "How often your data will be shared", Value: "Ongoing"},
		}
	case constants.StatusExpired:
		expired := ""
		if expiry, ok := cs.expiryTime(consent); ok {
			expired = cs.formatTime(expiry)
		}
		return []model.KeyDate{
			{Title: "When you gave consent", Value: created},
			{Title: "When consent was expired", Value: expired},
		}
	case constants.StatusRevoked:
		return []model.KeyDate{
			{Title: "When you gave consent", Value: created},
			{Title: "You cancelled your consent on", Value: cs.formatEpoch(consent.UpdatedTimestamp)},
		}
	default:
		return []model.KeyDate{}
	}
}

func (cs *ConsentService) perAccount() bool {
	return cs.options.PermissionBindType == config.BindDifferentPermissionsForEachAccount
}

func (cs *ConsentService) formatEpoch(seconds int64) string {
	if seconds <= 0 {
		return ""
	}
	return cs.formatTime(time.Unix(seconds, 0))
}

func (cs *ConsentService) formatTime(t time.Time) string {
	return t.In(cs.options.Location).Format(constants.KeyDateLayout)
}

func historyKey(consentID string, user model.User) string {
	return consentID + "|" + user.Email
}

func initiatorType(user model.User) string {
	if user.IsOfficer {
		return log.InitiatorTypeOfficer
	}
	return log.InitiatorTypeUser
}

func notRevocableError(consentID string, status int) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.CONSENT_NOT_REVOCABLE.Code,
		Message:     errors2.CONSENT_NOT_REVOCABLE.Message,
		Description: fmt.Sprintf("Consent %s is not active.", consentID),
	}, status)
}
