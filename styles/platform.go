// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"cogentcore.org/rangeslider/base/errors"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// PlatformDefaults are the rendering parameters used when no
// stylesheet or override specifies them. They are selected by the
// embedding application (see [DefaultsFor] and [PlatformFor]) and
// passed to [NewResolver]; nothing here is detected automatically.
type PlatformDefaults struct {

	// HorizontalThickness is the groove thickness of horizontal sliders, in pixels.
	HorizontalThickness float32 `toml:"horizontal_thickness" yaml:"horizontal_thickness"`

	// VerticalThickness is the groove thickness of vertical sliders, in pixels.
	VerticalThickness float32 `toml:"vertical_thickness" yaml:"vertical_thickness"`

	// TickOffset is how far the bar is shifted away from the tick marks.
	TickOffset float32 `toml:"tick_offset" yaml:"tick_offset"`

	// HOffset is the cross-axis offset of the bar for horizontal sliders
	// without a stylesheet.
	HOffset float32 `toml:"h_offset" yaml:"h_offset"`

	// VOffset is the cross-axis offset of the bar for vertical sliders
	// without a stylesheet.
	VOffset float32 `toml:"v_offset" yaml:"v_offset"`

	// TickBarAlpha is the opacity of the bar when tick marks are shown.
	TickBarAlpha float32 `toml:"tick_bar_alpha" yaml:"tick_bar_alpha"`

	// BarActive is the bar color or gradient in the active palette state.
	BarActive string `toml:"bar_active" yaml:"bar_active"`

	// BarInactive is the bar color or gradient in the inactive palette state.
	// If empty, BarActive is used.
	BarInactive string `toml:"bar_inactive" yaml:"bar_inactive"`

	// BarDisabled is the bar color or gradient in the disabled palette state.
	// If empty, it is derived by desaturating BarActive.
	BarDisabled string `toml:"bar_disabled" yaml:"bar_disabled"`

	// BarPen is the outline color of the bar. If empty, the bar has no outline.
	BarPen string `toml:"bar_pen" yaml:"bar_pen"`
}

// Bar returns the platform bar color text for the given palette state.
func (pd *PlatformDefaults) Bar(state PaletteStates) string {
	switch state {
	case Inactive:
		if pd.BarInactive != "" {
			return pd.BarInactive
		}
	case Disabled:
		return pd.BarDisabled
	}
	return pd.BarActive
}

// Clone returns a deep copy of the defaults.
func (pd *PlatformDefaults) Clone() PlatformDefaults {
	var res PlatformDefaults
	errors.Log(copier.CopyWithOption(&res, pd, copier.Option{DeepCopy: true}))
	return res
}

//go:embed platforms.toml
var platformsTOML []byte

var (
	builtinOnce sync.Once
	builtin     map[string]PlatformDefaults
)

// DefaultsFor returns a copy of the built-in defaults for the given platform.
func DefaultsFor(p Platforms) PlatformDefaults {
	builtinOnce.Do(func() {
		errors.Must(toml.Unmarshal(platformsTOML, &builtin))
	})
	pd := builtin[p.String()]
	return pd.Clone()
}

// LoadDefaults loads platform defaults from the given file, which
// must be TOML (.toml) or YAML (.yaml or .yml). The file contains
// the fields of [PlatformDefaults] at the top level. Fields that are
// missing from the file keep the values of base.
func LoadDefaults(filename string, base PlatformDefaults) (PlatformDefaults, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return base, err
	}
	pd := base.Clone()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &pd)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &pd)
	default:
		return base, fmt.Errorf("styles.LoadDefaults: unsupported file extension %q", ext)
	}
	if err != nil {
		return base, fmt.Errorf("styles.LoadDefaults: %s: %w", filename, err)
	}
	return pd, nil
}
