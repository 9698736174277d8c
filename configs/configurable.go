package configs

// Configurable is a typed config value that knows its key.
type Configurable interface {
	ConfigKey() string
}

// Lookup returns the first value for the key of T, or the zero value.
func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigKey())
}
