package entities

import "fmt"

// ConfigurationError reports a missing or malformed required option,
// e.g. the map center, the static map api key or the DOM target.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Please set %q options", e.Field)
}

// DependencyError reports a collaborator that was not supplied.
type DependencyError struct {
	Name string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("Missing %q dependency", e.Name)
}

// RemoteResourceError reports a failed style document or static image request.
type RemoteResourceError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RemoteResourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.StatusCode)
}

func (e *RemoteResourceError) Unwrap() error {
	return e.Err
}

// LayerSourceError reports a layer whose file is not reachable over http.
type LayerSourceError struct {
	Path string
	Type string
}

func (e *LayerSourceError) Error() string {
	return fmt.Sprintf("The %s file must be online: %s", e.Type, e.Path)
}
