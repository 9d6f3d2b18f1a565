package ports

import "context"

// ConfigLocator finds the project configuration file.
type ConfigLocator interface {
	/*
	   Locate returns explicitPath unchanged when it is not empty; existence is
	   checked later, when the file is read. Otherwise it searches startDir and
	   each of its parents for the default file name and returns the first match,
	   or an *alias.ConfigNotFoundError when the filesystem root is reached.
	*/
	Locate(ctx context.Context, explicitPath, startDir string) (string, error)
}
