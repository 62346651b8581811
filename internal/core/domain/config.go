package domain

// DefaultStatePath is where resolution records are kept when the config does not say otherwise.
const DefaultStatePath = ".thriftpath/state.json"

// Config is the resolved tool configuration. Paths are absolute once loaded.
type Config struct {
	StagingRoot string
	StatePath   string
	Jobs        int
	Classpath   []string
}
