// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the sync client process.
//
// [App] owns the local storages, the backend adapters, the crypto
// providers, the sync services and the optional diagnostics server, and
// runs the long-lived parts under one errgroup.
package client
