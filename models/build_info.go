// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// notAvailable stands in for build metadata the linker did not inject.
const notAvailable = "N/A"

// BuildInfo describes the catalogctl binary: the values come from -ldflags
// and are shown by "catalogctl version" and the browser's about box.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo trims the injected values and replaces empty ones with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// String renders "version (date, commit)".
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", orNotAvailable(b.Version), orNotAvailable(b.Date), orNotAvailable(b.Commit))
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
