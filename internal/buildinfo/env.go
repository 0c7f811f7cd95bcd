package buildinfo

const (
	development = "development"
	production  = "production"
)

// Environment reports the environment the binary was built for, either
// development or production.
func Environment() string {
	return environment
}

// IsDev reports whether the binary is a development build.
func IsDev() bool {
	return environment == development
}

// IsRelease reports whether the binary is a production build.
func IsRelease() bool {
	return environment == production
}
