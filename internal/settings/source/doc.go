// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source loads operator options into a [settings.Tree] before the
// option store is built. Each loader handles one origin: an lms.ini style
// file, a YAML file, LMS_<SECTION>__<KEY> environment variables or rows of
// the uiconfig table.
//
// Loaders only parse; layering (file, then database, then environment) and
// defaulting happen in the settings service.
package source
