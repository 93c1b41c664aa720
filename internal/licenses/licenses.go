package licenses

import _ "embed"

//go:embed embedded/LICENSE
var licenseText string

//go:embed embedded/DISCLAIMER.md
var disclaimerText string

func LicenseText() string {
	return licenseText
}

func DisclaimerText() string {
	return disclaimerText
}
