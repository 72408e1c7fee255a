package v1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

const (
	InstanceProduction = "production"
	InstanceStaging    = "staging"
	InstanceQAStaging  = "qastaging"
)

const (
	APIVersionBeta  = "beta"
	APIVersion1     = "1.0"
	APIVersionDevel = "devel"
)

// ValidAPIVersions lists the web service versions
// published by Launchpad.
var ValidAPIVersions = []string{APIVersionBeta, APIVersion1, APIVersionDevel}

type ConfigSpec struct {
	// Instance is either the name of a well-known Launchpad
	// instance or the full URL of a service root.
	Instance string `json:"instance,omitempty"`

	// ServiceVersion is the Launchpad web service version.
	ServiceVersion string `json:"serviceVersion,omitempty"`

	Distribution string `json:"distribution,omitempty"`
}

type Config struct {
	metav1.TypeMeta `json:",inline"`

	Spec ConfigSpec `json:"spec"`
}
