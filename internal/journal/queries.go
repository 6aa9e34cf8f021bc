/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package journal

const (
	queryInsertEvent = `
		INSERT INTO events (
			id, operation, caller, recipient, amount,
			caller_balance, recipient_balance, total_supply, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryGetAllEvents = `
		SELECT id, operation, caller, recipient, amount,
		       caller_balance, recipient_balance, total_supply, created_at
		FROM events
		ORDER BY rowid`

	queryGetAccountHistory = `
		SELECT id, operation, caller, recipient, amount,
		       caller_balance, recipient_balance, total_supply, created_at
		FROM events
		WHERE caller = ? OR recipient = ?
		ORDER BY rowid DESC
		LIMIT ? OFFSET ?`

	querySumMinted = `
		SELECT COALESCE(SUM(amount), 0) as minted_supply
		FROM events
		WHERE operation = 'mint'`

	queryMostRecentEventTime = `
		SELECT MAX(created_at)
		FROM events`
)
