package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/broker"
	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/database"
	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/fsblob"
	"github.com/SniffleSneeze/thumbnail-server/internal/infrastructure/minio"
	"github.com/SniffleSneeze/thumbnail-server/pkg/logger"
	"github.com/SniffleSneeze/thumbnail-server/pkg/thumbnail"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	Ingest          IngestConfig           `yaml:"ingest"`
	Thumbnail       thumbnail.Config       `yaml:"thumbnail"`
	BlobBackend     string                 `yaml:"blob_backend"`
	LocalBlob       fsblob.Config          `yaml:"local_blob"`
	MinIOClient     minio.Config           `yaml:"minio_client"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Sweeper         SweeperConfig          `yaml:"sweeper"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address   string `yaml:"address"`
	PublicURL string `yaml:"public_url"`
}

type IngestConfig struct {
	// MaxUploadBytes caps how much of an upload is buffered before the
	// stream is rejected.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
	// BodyLimit is the outer echo middleware cap, e.g. "50M".
	BodyLimit string `yaml:"body_limit"`
}

type SweeperConfig struct {
	Enabled         bool  `yaml:"enabled"`
	IntervalMinutes int64 `yaml:"interval_in_min"`
	GraceMinutes    int64 `yaml:"grace_in_min"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.DBConfig.URI = os.Getenv("DATABASE_URL")
	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		return Error{reason: "default.address is required"}
	}

	if c.BlobBackend != "local" && c.BlobBackend != "minio" {
		return Error{reason: "blob_backend must be \"local\" or \"minio\""}
	}

	if c.DBConfig.URI == "" {
		return Error{reason: "DATABASE_URL is not set"}
	}

	if c.Ingest.MaxUploadBytes <= 0 {
		return Error{reason: "ingest.max_upload_bytes must be positive"}
	}

	if c.BrokerConfig.Enabled && c.BrokerConfig.URI == "" {
		return Error{reason: "BROKER_URI is not set while the broker is enabled"}
	}

	return nil
}
