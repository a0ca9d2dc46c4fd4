package minio

type Config struct {
	// AccessKey and SecretKey are taken from the environment.
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
	Timeout   int64  `yaml:"timeout_in_ms"`
}
