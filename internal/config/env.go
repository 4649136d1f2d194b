package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// envRefPattern matches ${VAR_NAME} anywhere in a value
var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ReferencedEnvVars lists the distinct ${VAR} names used in a raw value.
func ReferencedEnvVars(rawValue string) []string {
	var names []string
	for _, m := range envRefPattern.FindAllStringSubmatch(rawValue, -1) {
		names = append(names, m[1])
	}
	return lo.Uniq(names)
}

// ExpandValue substitutes ${VAR} references from the process environment.
// Unset variables expand to "".
func ExpandValue(rawValue string) string {
	return envRefPattern.ReplaceAllStringFunc(rawValue, func(ref string) string {
		name := envRefPattern.FindStringSubmatch(ref)[1]
		return os.Getenv(name)
	})
}

// MissingEnvVars returns the referenced variables that are unset or empty.
func MissingEnvVars(rawValues ...string) []string {
	var missing []string
	for _, raw := range rawValues {
		for _, name := range ReferencedEnvVars(raw) {
			if os.Getenv(name) == "" {
				missing = append(missing, name)
			}
		}
	}
	return lo.Uniq(missing)
}

// LoadDotEnv loads .env then .env.local from the project root. Variables
// already present in the process environment are never overridden.
func LoadDotEnv(projectRoot string) error {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return nil
}
