// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/food-catalog/models"
)

func renderBuildInfoWindow(info models.BuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: catalogctl\n")
	b.WriteString("Version:     ")
	b.WriteString(info.Version)
	b.WriteString("\n")
	b.WriteString("Date:        ")
	b.WriteString(info.Date)
	b.WriteString("\n")
	b.WriteString("Commit:      ")
	b.WriteString(info.Commit)
	b.WriteString("\n")
	b.WriteString("Server:      ")
	b.WriteString(valueOrNA(serverVersion))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
