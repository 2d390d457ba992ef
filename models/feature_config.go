// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FeatureConfig is the subset of team feature flags the sync core needs.
type FeatureConfig struct {
	// MLSEnabled is the team-wide MLS switch.
	MLSEnabled bool `json:"mls_enabled"`

	// SupportedProtocols are the protocols the team allows.
	SupportedProtocols []SupportedProtocol `json:"supported_protocols"`

	// DefaultProtocol is the team preference for new conversations.
	DefaultProtocol SupportedProtocol `json:"default_protocol"`

	// MLSMigrationEnabled permits migrating Proteus conversations to MLS.
	MLSMigrationEnabled bool `json:"mls_migration_enabled"`
}

// DefaultFeatureConfig is used until the first feature flag sync succeeds.
func DefaultFeatureConfig() FeatureConfig {
	return FeatureConfig{
		SupportedProtocols: []SupportedProtocol{SupportedProtocolProteus},
		DefaultProtocol:    SupportedProtocolProteus,
	}
}
