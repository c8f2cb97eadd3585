package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
)

var portCmd = flag.Int("port", 3000, "HTTP server port")

type Config struct {
	ServerPort      int
	DataDirectory   string
	DatabaseName    string
	ConfigServerUrl string
	DeploymentMode  string
}

func LoadConfig() Config {
	godotenv.Load(".env")
	if !flag.Parsed() {
		flag.Parse()
	}
	cfg := Config{
		ServerPort:      *portCmd,
		DataDirectory:   os.Getenv("DATA_DIRECTORY"),
		DatabaseName:    os.Getenv("DATABASE_NAME"),
		ConfigServerUrl: os.Getenv("CONFIG_SERVER_URL"),
		DeploymentMode:  os.Getenv("DEPLOYMENT_MODE"),
	}
	if cfg.DataDirectory == "" {
		cfg.DataDirectory = "."
	}
	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "mydb"
	}
	return cfg
}
