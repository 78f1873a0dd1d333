// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchSheet(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "slider.qss")
	require.NoError(t, os.WriteFile(fn, []byte("Groove { height: 4px; }"), 0666))

	sw, err := WatchSheet(fn)
	require.NoError(t, err)
	defer sw.Close()

	want := "Groove { height: 6px; }"
	require.NoError(t, os.WriteFile(fn, []byte(want), 0666))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-sw.Changes():
			if got == want {
				assert.NoError(t, sw.Close())
				assert.NoError(t, sw.Close())
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for stylesheet change")
		}
	}
}
