// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CertificateStatus is the validity of an end-to-end identity certificate.
type CertificateStatus int

const (
	CertificateValid CertificateStatus = iota
	CertificateExpired
	CertificateRevoked
)

// CredentialType is the kind of MLS credential a device uses.
type CredentialType int

const (
	CredentialBasic CredentialType = iota
	CredentialX509
)

// MemberIdentity is the certificate-derived identity of one device of a
// group member, as reported by the MLS backend.
type MemberIdentity struct {
	ClientID       ClientID
	DisplayName    string
	Handle         string
	Status         CertificateStatus
	CredentialType CredentialType
}

// IsValid reports whether the identity carries a valid x509 certificate.
func (i MemberIdentity) IsValid() bool {
	return i.Status == CertificateValid && i.CredentialType == CredentialX509
}

// GroupVerificationData is what the verification checker needs to know
// about a group from local storage.
type GroupVerificationData struct {
	ConversationID     ConversationID
	VerificationStatus VerificationStatus
	DegradedNotified   bool

	// Members maps member user ids to their locally known profiles.
	Members map[UserID]MemberProfile

	// Missing lists members with no local profile.
	Missing []UserID
}
