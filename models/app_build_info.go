// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries the application version and build-time metadata
// injected by linker flags. It is served by the version endpoint.
type AppBuildInfo struct {
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate"`
	BuildCommit string `json:"buildCommit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], substituting "N/A" for values
// that were not injected at build time.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version:     orNA(buildVersion),
		BuildDate:   orNA(buildDate),
		BuildCommit: orNA(buildCommit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
