// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_DoesNotAliasOperatorTree(t *testing.T) {
	operator := Tree{}
	operator.Set("mail", "smtp_host", String("mx.example.net"))

	store := NewStore(operator, Defaults(), nil)
	operator.Set("mail", "smtp_host", String("changed"))

	assert.Equal(t, "mx.example.net", store.String("mail.smtp_host", ""))
}

func TestNewStore_NilOperator(t *testing.T) {
	store := NewStore(nil, Defaults(), nil)
	assert.Equal(t, "welcome", store.String("phpui.default_module", ""))
}

func TestStore_MergeDefaultsKeepsExisting(t *testing.T) {
	operator := Tree{}
	operator.Set("custom", "flag", String("yes"))
	store := NewStore(operator, nil, nil)

	store.MergeDefaults(Tree{"custom": {"flag": String("no"), "other": String("1")}})
	store.MergeDefaults(Tree{"custom": {"flag": String("no"), "other": String("1")}})

	assert.True(t, store.Check("custom.flag"))
	assert.True(t, store.Check("custom.other"))
}

func TestStore_Reload(t *testing.T) {
	operator := Tree{}
	operator.Set("mail", "smtp_host", String("old"))
	store := NewStore(operator, Defaults(), nil)

	next := Tree{}
	next.Set("mail", "smtp_port", String("587"))
	store.Reload(next, Defaults())

	assert.Equal(t, "127.0.0.1", store.String("mail.smtp_host", ""), "old operator value is gone")
	assert.Equal(t, "587", store.String("mail.smtp_port", ""))
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	store := NewStore(nil, Defaults(), nil)

	snap := store.Snapshot()
	snap.Set("mail", "smtp_host", String("changed"))

	assert.Equal(t, "127.0.0.1", store.String("mail.smtp_host", ""))
	require.Contains(t, store.Sections(), "mail")
	assert.Equal(t, len(Defaults()), len(store.Sections()))
}

func TestStore_ConcurrentReadersAndReload(t *testing.T) {
	store := NewStore(nil, Defaults(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = store.Check("homepage.box_lms")
				_ = store.String("mail.smtp_host", "")
			}
		}()
	}

	for i := 0; i < 20; i++ {
		store.Reload(nil, Defaults())
	}
	wg.Wait()

	assert.True(t, store.Check("homepage.box_lms"))
}
