// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

package models

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and shown in
// version output for diagnostics and release traceability.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the semantic version string of the build, or "N/A"
// when none was injected.
func (a AppBuildInfo) BuildVersion() string {
	return orNA(a.buildVersion)
}

// BuildDate returns the build timestamp string, or "N/A" when none was
// injected.
func (a AppBuildInfo) BuildDate() string {
	return orNA(a.buildDate)
}

// BuildCommit returns the source-control commit hash used for the build,
// or "N/A" when none was injected.
func (a AppBuildInfo) BuildCommit() string {
	return orNA(a.buildCommit)
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
