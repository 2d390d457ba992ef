// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	selectMemberProfiles = `
		SELECT
			m.user_id,
			m.user_domain,
			u.name,
			u.handle,
			u.id IS NOT NULL AS present
		FROM conversation_members m
		LEFT JOIN users u ON u.id = m.user_id AND u.domain = m.user_domain
		WHERE m.conversation_id = ? AND m.conversation_domain = ?
		ORDER BY m.user_id;`

	selectUsersWithOneOnOne = `
		SELECT DISTINCT
			u.id,
			u.domain,
			u.name,
			u.handle,
			u.team_id,
			u.user_type,
			u.connection_state,
			u.supported_protocols,
			u.deleted,
			u.active_one_on_one_id,
			u.active_one_on_one_domain
		FROM users u
		LEFT JOIN conversation_members m ON m.user_id = u.id AND m.user_domain = u.domain
		LEFT JOIN conversations c ON c.id = m.conversation_id AND c.domain = m.conversation_domain
		WHERE u.is_self = 0
		  AND u.deleted = 0
		  AND (u.active_one_on_one_id IS NOT NULL OR c.type = ?)
		ORDER BY u.id;`

	moveMessages = `
		UPDATE messages
		SET conversation_id = ?, conversation_domain = ?
		WHERE conversation_id = ? AND conversation_domain = ?;`
)
