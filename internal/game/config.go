package game

// Config holds session configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible secret word selection.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// KeyboardPolicy decides how repeated marks for the same letter combine.
	KeyboardPolicy MergePolicy
}
