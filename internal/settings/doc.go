// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings holds the runtime option store of the LMS user interface:
// a two-level (section, key) map of raw string-or-boolean values, seeded with
// compiled-in defaults and addressed by qualified names such as
// "mail.smtp_host".
//
// A [Store] is constructed once at startup from the operator's options (see
// package source for the loaders) and the tree returned by [Defaults]. After
// that it is read-mostly; the only mutation path is [Store.Reload], which
// replaces the whole tree at once.
//
// Two lookup shapes are exposed:
//   - [Store.Check] coerces the option into a boolean and applies the
//     superuser override for the "privileges" section;
//   - [Store.Get] / [Store.GetDefault] return the raw value, treating an empty
//     string as absent.
package settings
