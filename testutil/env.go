package testutil

// Lookup returns an environment lookup function backed by vars, for code that
// accepts an injectable os.LookupEnv.
func Lookup(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}
