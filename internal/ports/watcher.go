package ports

// Watcher monitors input files and reports when one of them changes. Editors
// often save by writing a temporary file and renaming it over the original, so
// the adapter watches the containing directories and filters events down to
// the requested files. Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring files. onChange is called with the absolute path
	// of a changed file once its burst of events has settled. The callback may
	// be invoked from any goroutine. Returns an error if a containing
	// directory doesn't exist or permissions are insufficient.
	Watch(files []string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire and none is still running. Must not
	// be called from onChange. Safe to call multiple times.
	Stop() error
}
