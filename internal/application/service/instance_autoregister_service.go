package service

import (
	"log"
	"net"

	"github.com/google/uuid"

	"mydb/internal/domain"
	"mydb/internal/platform/client"
	"mydb/internal/platform/config"
)

type InstanceAutoRegisterService struct {
	configServer    *client.ConfigServerClient
	instanceManager *domain.DbInstanceManager
	config          config.Config
}

func NewInstanceAutoRegisterService(configServer *client.ConfigServerClient, instanceManager *domain.DbInstanceManager,
	config config.Config) *InstanceAutoRegisterService {

	return &InstanceAutoRegisterService{
		configServer:    configServer,
		instanceManager: instanceManager,
		config:          config,
	}
}

func (i *InstanceAutoRegisterService) Execute() {
	if i.config.ConfigServerUrl == "" {
		log.Println("No config server configured, skipping instance registration")
		return
	}

	instance := domain.DbInstance{
		Id:       uuid.NewString(),
		Host:     i.getOutboundIP(),
		Port:     i.config.ServerPort,
		Database: i.config.DatabaseName,
	}

	registered, err := i.configServer.RegisterInstance(instance)
	if err != nil {
		log.Printf("Failed to register instance: %v\n", err)
		return
	}
	i.instanceManager.SetCurrentInstance(registered)
	log.Printf("Registered current instance with id %s\n", registered.Id)
}

func (i *InstanceAutoRegisterService) getOutboundIP() string {
	if i.config.DeploymentMode == "devel" {
		return "localhost"
	}
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)

	return localAddr.IP.String()
}
