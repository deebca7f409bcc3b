// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/go-lms/internal/cli"
	"github.com/MKhiriev/go-lms/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// cobra has already printed the error
	if err := cli.Execute(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)); err != nil {
		os.Exit(1)
	}
}
