package instance

import "os"

// GetID returns the identifier of the running process: the dyno name when set, then the
// container hostname, else "local".
func GetID() string {
	for _, key := range []string{"DYNO", "HOSTNAME"} {
		if id := os.Getenv(key); id != "" {
			return id
		}
	}
	return "local"
}
