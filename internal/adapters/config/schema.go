package config

// CurrentVersion is the only config file version understood by the loader.
const CurrentVersion = "1"

// File represents the structure of the thriftpath.yaml configuration file.
type File struct {
	Version   string   `yaml:"version"`
	Staging   string   `yaml:"staging"`
	State     string   `yaml:"state"`
	Jobs      int      `yaml:"jobs"`
	Classpath []string `yaml:"classpath"`
}
