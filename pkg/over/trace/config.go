package trace

import "time"

// Config holds the dependencies used by [Wrap] and [WrapMut].
//
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// Logger receives the overStart/overDone records.
	//
	// Set by [NewConfig] to [DefaultSLogger].
	Logger SLogger

	// LogValues additionally dumps input and output values at Debug level.
	//
	// Set by [NewConfig] to false.
	LogValues bool

	// NewSpanID returns the identifier shared by the records of one call.
	//
	// Set by [NewConfig] to [NewSpanID].
	NewSpanID func() string

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Logger:    DefaultSLogger(),
		LogValues: false,
		NewSpanID: NewSpanID,
		TimeNow:   time.Now,
	}
}
