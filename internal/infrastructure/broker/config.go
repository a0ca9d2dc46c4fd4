package broker

type Config struct {
	// URI is taken from the environment.
	URI        string
	Enabled    bool   `yaml:"enabled"`
	StreamName string `yaml:"stream_name"`
	GroupName  string `yaml:"group_name"`
}

type PublisherConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
