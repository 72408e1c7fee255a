package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	v1 "github.com/djcass44/lpmadison/pkg/api/v1"
	"k8s.io/apimachinery/pkg/util/yaml"
)

const DefaultDistribution = "ubuntu"

var instanceRoots = map[string]string{
	v1.InstanceProduction: "https://api.launchpad.net/",
	v1.InstanceStaging:    "https://api.staging.launchpad.net/",
	v1.InstanceQAStaging:  "https://api.qastaging.launchpad.net/",
}

var ErrInvalid = errors.New("invalid configuration")

// Default returns the configuration used when
// nothing else has been provided.
func Default() v1.Config {
	return v1.Config{
		Spec: v1.ConfigSpec{
			Instance:       v1.InstanceProduction,
			ServiceVersion: v1.APIVersionDevel,
			Distribution:   DefaultDistribution,
		},
	}
}

// Read decodes a YAML or JSON configuration file. Fields
// that the file leaves empty keep their default values.
func Read(path string) (v1.Config, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return v1.Config{}, err
	}
	defer f.Close()

	cfg := Default()
	if err := yaml.NewYAMLOrJSONDecoder(f, 4).Decode(&cfg); err != nil {
		return v1.Config{}, fmt.Errorf("decoding config '%s': %w", path, err)
	}
	if cfg.Spec.Instance == "" {
		cfg.Spec.Instance = v1.InstanceProduction
	}
	if cfg.Spec.ServiceVersion == "" {
		cfg.Spec.ServiceVersion = v1.APIVersionDevel
	}
	if cfg.Spec.Distribution == "" {
		cfg.Spec.Distribution = DefaultDistribution
	}
	return cfg, nil
}

// Validate checks that the configuration can be used
// to reach a Launchpad web service.
func Validate(spec v1.ConfigSpec) error {
	if !slices.Contains(v1.ValidAPIVersions, spec.ServiceVersion) {
		return fmt.Errorf("%w: unsupported api version '%s', expected one of %s", ErrInvalid, spec.ServiceVersion, strings.Join(v1.ValidAPIVersions, ", "))
	}
	if spec.Distribution == "" {
		return fmt.Errorf("%w: distribution must be set", ErrInvalid)
	}
	if _, err := ServiceRoot(spec); err != nil {
		return err
	}
	return nil
}

// ServiceRoot returns the versioned root of the web service,
// e.g. https://api.launchpad.net/devel/
func ServiceRoot(spec v1.ConfigSpec) (string, error) {
	root, ok := instanceRoots[spec.Instance]
	if !ok {
		uri, err := url.Parse(spec.Instance)
		if err != nil {
			return "", fmt.Errorf("%w: parsing instance url: %w", ErrInvalid, err)
		}
		if (uri.Scheme != "https" && uri.Scheme != "http") || uri.Host == "" {
			return "", fmt.Errorf("%w: unknown instance '%s'", ErrInvalid, spec.Instance)
		}
		root = uri.String()
	}
	return strings.TrimSuffix(root, "/") + "/" + spec.ServiceVersion + "/", nil
}
