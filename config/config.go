package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depgate/internal/domain/entities"
)

// Config is the top-level configuration for depgate.
type Config struct {
	// Inventory selects the listing source ("pip" or "file", default "pip").
	Inventory string `yaml:"inventory"`
	// ListingFile is the saved listing path used by the "file" inventory.
	ListingFile string `yaml:"listing_file"`
	// PolicyFile points to an HCL policy file with dependency blocks.
	PolicyFile string `yaml:"policy_file"`
	// Python optionally gates the Python runtime version.
	Python *RequirementConfig `yaml:"python"`
	// Requirements are the package version ranges to gate.
	Requirements []RequirementConfig `yaml:"requirements"`
}

// RequirementConfig describes one dependency requirement: the package must
// be installed with a version in [min, max).
type RequirementConfig struct {
	Name string `yaml:"name"`
	Min  string `yaml:"min"`
	Max  string `yaml:"max"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment
// variables in path values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if cfg.Inventory == "" {
		cfg.Inventory = "pip"
	}
	cfg.ListingFile = expandEnv(cfg.ListingFile)
	cfg.PolicyFile = expandEnv(cfg.PolicyFile)

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".depgate.yaml",
		".depgate.yml",
		"depgate.yaml",
		"depgate.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Specs converts the configured requirements into dependency specs.
func (c *Config) Specs() []entities.DependencySpec {
	specs := make([]entities.DependencySpec, 0, len(c.Requirements))
	for _, req := range c.Requirements {
		specs = append(specs, entities.DependencySpec{
			Name:       req.Name,
			MinVersion: req.Min,
			MaxVersion: req.Max,
		})
	}
	return specs
}

// RuntimeSpec returns the Python runtime requirement, or nil when not set.
func (c *Config) RuntimeSpec() *entities.DependencySpec {
	if c.Python == nil {
		return nil
	}
	return &entities.DependencySpec{
		Name:       "python",
		MinVersion: c.Python.Min,
		MaxVersion: c.Python.Max,
	}
}

// expandEnv expands ${ENV_VAR} references in a config value.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks requirement completeness and warns about bounds that are
// not canonical semver; such bounds still work, they just rely on the
// tolerant extraction rules.
func validate(cfg *Config) error {
	if cfg.Inventory == "file" && cfg.ListingFile == "" {
		return errors.New("inventory \"file\" requires listing_file to be set")
	}

	reqs := cfg.Requirements
	if cfg.Python != nil {
		python := *cfg.Python
		python.Name = "python"
		reqs = append(reqs, python)
	}

	for _, req := range reqs {
		if req.Name == "" {
			return errors.New("requirement with empty name")
		}
		if req.Min == "" || req.Max == "" {
			return fmt.Errorf("requirement %q needs both min and max", req.Name)
		}
		warnNonCanonical(req.Name, req.Min)
		warnNonCanonical(req.Name, req.Max)
	}
	return nil
}

// warnNonCanonical logs when a bound is not canonical semver.
func warnNonCanonical(name, bound string) {
	if !semver.IsValid(normalizeVersion(bound)) {
		logger.Debugf(
			"Requirement %q bound %q is not canonical semver; tolerant parsing applies",
			name, bound,
		)
	}
}

// normalizeVersion ensures the version has a 'v' prefix for semver compatibility.
func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
