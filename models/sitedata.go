package models

// Stat is a single key/value entry from the stats table, feeding the
// headline numbers on the marketing pages.
type Stat struct {
	Key   string
	Value string
}

// Domain is one entry of the domain portfolio shown on /domains.
type Domain struct {
	Name    string
	Primary bool
	Status  string
}
