// Package env implements environment related functionality.
package env

import (
	"os"
	"strconv"
)

// IsCI reports whether the environment is a CI one.
//
// Based on https://github.com/watson/ci-info/blob/HEAD/index.js
func IsCI() bool {
	return os.Getenv("CI") != "" || // GitHub Actions, Travis CI, CircleCI, Cirrus CI, GitLab CI, AppVeyor, CodeShip, dsari
		os.Getenv("BUILD_NUMBER") != "" || // Jenkins, TeamCity
		os.Getenv("RUN_ID") != "" // TaskCluster, dsari
}

// IsSet reports whether the named environment variable is present, even if
// it is empty.
func IsSet(key string) bool {
	_, ok := os.LookupEnv(key)

	return ok
}

// IsTruthy reports whether the named environment variable holds a value
// strconv.ParseBool considers true.
func IsTruthy(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))

	return v
}

// First returns the first non-empty value of the named environment variables.
func First(keys ...string) string {
	return FirstOrDefault("", keys...)
}

// FirstOrDefault returns the first non-empty value of the named environment
// variables or def in case none is set.
func FirstOrDefault(def string, keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}

	return def
}

// Int returns the integer value of the named environment variable or def in
// case the variable is unset or malformed.
func Int(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}

	return def
}
