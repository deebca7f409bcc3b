// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements lmsconf, the operator tool for LMS options.
//
// Local commands (get, check, dump) resolve options the same way the server
// does: option file, uiconfig table and environment over the compiled-in
// defaults. The remote command group asks a running server instead.
package cli
