package ports

import "context"

// ChangeNotifier reports that stored sessions may have changed on disk.
type ChangeNotifier interface {
	// Changes delivers a value after each burst of changes until ctx is
	// canceled, then closes the channel.
	Changes(ctx context.Context) (<-chan struct{}, error)
}
