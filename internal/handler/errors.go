// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server has no
// address to listen on. The application fails at startup in that case.
var errNoHandlersAreCreated = errors.New("no handlers are created")
