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

package catalog

import "github.com/wso2/openbanking-selfcare-service/internal/permission/model"

const (
	BusinessCatalogName   = "business"
	IndividualCatalogName = "individual"
)

// Business returns the permission language shown to business profile customers.
func Business() model.Catalog {
	entries := []model.PermissionLanguageEntry{
		{
			Scope:           "CDRREADACCOUNTSBASIC",
			PermissionScope: "bank:accounts.basic:read",
			DataCluster:     "Account name, type and balance",
			Permissions:     []string{"Name of account", "Type of account", "Account balance"},
		},
		{
			Scope:           "CDRREADACCOUNTSDETAILS",
			PermissionScope: "bank:accounts.detail:read",
			DataCluster:     "Account balance and details",
			Permissions: []string{
				"Name of account",
				"Type of account",
				"Account balance",
				"Account number",
				"Interest rates",
				"Fees",
				"Discounts",
				"Account terms",
				"Account mail address",
			},
		},
		{
			Scope:           "CDRREADTRANSACTION",
			PermissionScope: "bank:transactions:read",
			DataCluster:     "Transaction details",
			Permissions: []string{
				"Incoming and outgoing transactions",
				"Amounts",
				"Dates",
				"Descriptions of transactions",
				"Who you have sent money to and received money from",
			},
		},
		{
			Scope:           "CDRREADPAYMENTS",
			PermissionScope: "bank:regular_payments:read",
			DataCluster:     "Direct debits and scheduled payments",
			Permissions:     []string{"Direct debits", "Scheduled payments"},
		},
		{
			Scope:           "CDRREADPAYEES",
			PermissionScope: "bank:payees:read",
			DataCluster:     "Saved payees",
			Permissions:     []string{"Names and details of accounts you have saved"},
		},
		{
			Scope:           "READCUSTOMERDETAILSBASIC",
			PermissionScope: "common:customer.basic:read",
			DataCluster:     "Organisation profile",
			Permissions: []string{
				"Agent name and role",
				"Organisation name",
				"Organisation numbers (ABN or ACN)",
				"Charity status",
				"Establishment date",
				"Industry",
				"Organisation type",
				"Country of registration",
			},
		},
		{
			Scope:           "READCUSTOMERDETAILS",
			PermissionScope: "common:customer.detail:read",
			DataCluster:     "Organisation profile and contact details",
			Permissions: []string{
				"Agent name and role",
				"Organisation name",
				"Organisation numbers (ABN or ACN)",
				"Charity status",
				"Establishment date",
				"Industry",
				"Organisation type",
				"Country of registration",
				"Organisation address",
				"Mail address",
				"Phone number",
			},
		},
	}
	entries = append(entries, contactEntries()...)
	entries = append(entries, accountsV3Entries()...)
	return model.Catalog{Name: BusinessCatalogName, Entries: entries}
}

// contactEntries holds the name cluster and one contact details entry per combination of the
// EMAIL, MAIL and PHONE profile categories.
func contactEntries() []model.PermissionLanguageEntry {
	return []model.PermissionLanguageEntry{
		{
			Scope:           "NAME",
			PermissionScope: "name",
			DataCluster:     "Name",
			Permissions:     []string{"Full name and title(s)"},
		},
		{
			Scope:           "EMAIL",
			PermissionScope: "email",
			DataCluster:     "Contact Details",
			Permissions:     []string{"Email address"},
		},
		{
			Scope:           "MAIL",
			PermissionScope: "mailaddress",
			DataCluster:     "Contact Details",
			Permissions:     []string{"Mail address"},
		},
		{
			Scope:           "PHONE",
			PermissionScope: "phone",
			DataCluster:     "Contact Details",
			Permissions:     []string{"Phone number"},
		},
		{
			Scope:           "EMAIL_MAIL",
			PermissionScope: "emailmailaddress",
			DataCluster:     "Contact Details",
			Permissions:     []string{"Email address", "Mail address"},
		},
		{
			Scope:           "EMAIL_PHONE",
			PermissionScope: "emailphone",
			DataCluster:     "Contact Details",
			Permissions:     []string{"Email address", "Phone number"},
		},
		{
			Scope:           "MAIL_PHONE",
			PermissionScope: "mailaddress phone",
			DataCluster:     "Contact Details",
			Permissions:     []string{"Mail address", "Phone number"},
		},
		{
			Scope:           "EMAIL_MAIL_PHONE",
			PermissionScope: "emailmailaddressphone",
			DataCluster:     "Contact Details",
			Permissions:     []string{"Email address", "Mail address", "Phone number"},
		},
	}
}

// accountsV3Entries covers the account information permissions of the 3.0.0 accounts API.
func accountsV3Entries() []model.PermissionLanguageEntry {
	accountFeatures := []string{
		"Account number",
		"Account mail address",
		"Interest rates",
		"Fees",
		"Discounts",
		"Account terms",
	}
	return []model.PermissionLanguageEntry{
		{
			Scope:           "ReadAccountsDetail",
			PermissionScope: "readaccountsdetail",
			DataCluster:     "Account numbers and features",
			Permissions:     append([]string{}, accountFeatures...),
		},
		{
			Scope:           "ReadBalances",
			PermissionScope: "readbalances",
			DataCluster:     "Ability to read all balance information",
			Permissions:     append([]string{}, accountFeatures...),
		},
		{
			Scope:           "ReadTransactionsDetail",
			PermissionScope: "readtransactionsdetail",
			DataCluster:     "Ability to read transaction data elements which may hold silent party details",
			Permissions:     append([]string{}, accountFeatures...),
		},
	}
}
