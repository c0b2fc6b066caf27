package types

// Fragment is one staged configuration unit, identified by its filename.
// Fragments are never mutated in place once stored.
type Fragment struct {
	// Name is the fragment's identifier (its base filename).
	Name string
	// Data is the raw JSON content.
	Data []byte
}

// Listing holds the identifiers present in each partition, sorted
// lexicographically.
type Listing struct {
	Available []string
	Active    []string
}

// Store manages the catalog of configuration fragments as a key-value store
// with two partitions: available (staged) and active (selected for
// combination). Membership in the active partition is the only activation
// state there is.
//
// Implementations hold no cache; every call re-reads the backing storage, so
// external modification between calls is visible immediately.
type Store interface {
	// Add stages the file at sourcePath under its base name. The source must
	// exist and contain valid JSON. Returns the assigned identifier.
	Add(sourcePath string) (string, error)

	// Activate copies an available fragment into the active partition.
	// Re-activating an already-active fragment overwrites it.
	Activate(name string) error

	// Deactivate removes a fragment from the active partition. Fails if the
	// fragment is not currently active.
	Deactivate(name string) error

	// List returns the identifiers in each partition.
	List() (Listing, error)

	// ActiveFragments returns the active fragments with their content, in
	// lexicographic name order.
	ActiveFragments() ([]Fragment, error)
}
