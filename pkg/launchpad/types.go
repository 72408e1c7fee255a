package launchpad

import "net/http"

type Client struct {
	root   string
	client *http.Client
}

type Distribution struct {
	SelfLink        string `json:"self_link"`
	Name            string `json:"name"`
	DisplayName     string `json:"display_name"`
	MainArchiveLink string `json:"main_archive_link"`
}

type DistroSeries struct {
	SelfLink    string `json:"self_link"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	DisplayName string `json:"display_name"`
	Status      string `json:"status"`
}

type DistroArchSeries struct {
	SelfLink        string `json:"self_link"`
	ArchitectureTag string `json:"architecture_tag"`
	DisplayName     string `json:"display_name"`
}

// BinaryPublication is a single entry in the binary
// package publishing history of an archive.
type BinaryPublication struct {
	SelfLink             string `json:"self_link"`
	BinaryPackageName    string `json:"binary_package_name"`
	BinaryPackageVersion string `json:"binary_package_version"`
	SourcePackageName    string `json:"source_package_name"`
	SourcePackageVersion string `json:"source_package_version"`
	Status               string `json:"status"`
	Pocket               string `json:"pocket"`
	ComponentName        string `json:"component_name"`
	DistroArchSeriesLink string `json:"distro_arch_series_link"`

	// DatePublished is empty while the publication
	// is still pending.
	DatePublished string `json:"date_published"`
}

type PublishedBinariesOptions struct {
	ExactMatch bool

	// DistroArchSeries is the self link of a DistroArchSeries.
	DistroArchSeries string

	BinaryName       string
	Version          string
	CreatedSinceDate string
}

type collection[T any] struct {
	TotalSize          int    `json:"total_size"`
	Start              int    `json:"start"`
	Entries            []T    `json:"entries"`
	NextCollectionLink string `json:"next_collection_link"`
}
