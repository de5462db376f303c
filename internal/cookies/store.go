package cookies

import "context"

// Store defines the interface for cookie persistence.
type Store interface {
	// Set stores or updates a cookie, keyed by (domain, path, name).
	Set(ctx context.Context, cookie Cookie) error

	// Get retrieves a cookie by domain, path, and name.
	Get(ctx context.Context, domain, path, name string) (Cookie, error)

	// List returns cookies matching the query options.
	List(ctx context.Context, opts QueryOptions) ([]Cookie, error)

	// Delete removes a specific cookie.
	Delete(ctx context.Context, domain, path, name string) error

	// DeleteByDomain removes all cookies for a domain.
	DeleteByDomain(ctx context.Context, domain string) error

	// DeleteExpired removes all expired cookies and returns count.
	DeleteExpired(ctx context.Context) (int64, error)

	// Clear removes all cookies.
	Clear(ctx context.Context) error

	// Count returns total number of cookies.
	Count(ctx context.Context) (int64, error)

	// Close closes the store.
	Close() error
}

// QueryOptions for filtering cookies.
type QueryOptions struct {
	Domain         string // Filter by domain
	Path           string // Filter by path
	Name           string // Filter by cookie name
	IncludeExpired bool   // Include expired cookies
	Limit          int    // Max results (0 = no limit)
}

// Archive writes every record of the jar to the store. Records sharing
// a full key overwrite each other in jar order, so callers wanting the
// recency policy should self-merge first.
func Archive(ctx context.Context, s Store, jar *Jar) error {
	for _, c := range jar.All() {
		if err := s.Set(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// Restore appends every non-expired stored record to the jar.
func Restore(ctx context.Context, s Store, jar *Jar) error {
	records, err := s.List(ctx, QueryOptions{})
	if err != nil {
		return err
	}
	for _, c := range records {
		jar.Add(c)
	}
	return nil
}
