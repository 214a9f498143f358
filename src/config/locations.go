package config

import (
	"fmt"
	"sort"
)

// Location holds the measured transmission parameters for one geographic
// region. Rates are in virtual-time units: the time a node in this location
// spends uploading or downloading one message.
type Location struct {
	Name         string  `mapstructure:"name"`
	UploadRate   float64 `mapstructure:"upload-rate"`
	DownloadRate float64 `mapstructure:"download-rate"`
	Latency      float64 `mapstructure:"latency"`
}

// DefaultLocations returns the built-in measurement table.
func DefaultLocations() []Location {
	return []Location{
		{Name: "ohio", UploadRate: 5, DownloadRate: 2, Latency: 1},
		{Name: "ireland", UploadRate: 6, DownloadRate: 3, Latency: 2},
		{Name: "tokyo", UploadRate: 7, DownloadRate: 3, Latency: 3},
		{Name: "frankfurt", UploadRate: 6, DownloadRate: 2, Latency: 2},
		{Name: "sydney", UploadRate: 9, DownloadRate: 4, Latency: 4},
		{Name: "saopaulo", UploadRate: 8, DownloadRate: 4, Latency: 3},
	}
}

// LocationNames returns the sorted names of all measured locations.
func (c *Config) LocationNames() []string {
	names := make([]string, 0, len(c.Locations))
	for _, l := range c.Locations {
		names = append(names, l.Name)
	}
	sort.Strings(names)
	return names
}

// FindLocation returns the parameters measured for the named location.
func (c *Config) FindLocation(name string) (Location, error) {
	for _, l := range c.Locations {
		if l.Name == name {
			return l, nil
		}
	}
	return Location{}, NewUnknownLocationError(name, c.LocationNames())
}

// ValidateLocations checks that every requested location has measurements.
// It fails on the first unknown location, naming it and the allowed set.
func (c *Config) ValidateLocations(names []string) error {
	for _, name := range names {
		if _, err := c.FindLocation(name); err != nil {
			return err
		}
	}
	return nil
}

// UnknownLocationError signals a request for a location with no transmission
// measurements. Population construction aborts before any node is created.
type UnknownLocationError struct {
	Location string
	Allowed  []string
}

// NewUnknownLocationError ...
func NewUnknownLocationError(location string, allowed []string) UnknownLocationError {
	return UnknownLocationError{
		Location: location,
		Allowed:  allowed,
	}
}

// Error ...
func (e UnknownLocationError) Error() string {
	return fmt.Sprintf("There are no measurements for location %s. Only available locations: %v", e.Location, e.Allowed)
}

// IsUnknownLocation checks that an error is of type UnknownLocationError.
func IsUnknownLocation(err error) bool {
	_, ok := err.(UnknownLocationError)
	return ok
}
