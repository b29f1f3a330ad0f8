package util

// Config holds runtime settings and flags.
type Config struct {
	SeedText   string
	DSN        string
	Difficulty string // hell|hard|normal|easy
	NoPersist  bool   // run without a database
}
