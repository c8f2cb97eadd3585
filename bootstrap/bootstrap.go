package bootstrap

import (
	"go.uber.org/dig"

	"mydb/internal/application/service"
	"mydb/internal/domain"
	"mydb/internal/platform/client"
	"mydb/internal/platform/config"
	"mydb/internal/platform/parser"
	"mydb/internal/platform/repository"
	"mydb/internal/platform/server"
	"mydb/internal/platform/server/handler/dbinstance"
	"mydb/internal/platform/server/handler/statement"
	"mydb/internal/platform/server/handler/table"
)

func Run() (bool, error) {
	container := dig.New()
	serviceConstructors := []interface{}{
		config.LoadConfig,
		tableRepository,
		configServerClient,
		domain.NewDbInstanceManager,
		parser.New,
		service.NewCreateTableService,
		service.NewInsertRowService,
		service.NewQueryTableService,
		service.NewTableLengthService,
		service.NewParseStatementService,
		service.NewInstanceAutoRegisterService,
		service.NewGetAllInstancesService,
		service.NewUpdateInstancesService,
		table.NewTableHandler,
		statement.NewStatementHandler,
		dbinstance.NewDbInstanceHandler,
		server.NewServer,
	}
	for _, constructor := range serviceConstructors {
		if err := container.Provide(constructor); err != nil {
			return false, err
		}
	}
	err := container.Invoke(func(s server.Server,
		ar *service.InstanceAutoRegisterService,
		g *service.GetAllInstancesService) error {
		ar.Execute()
		if err := g.Execute(); err != nil {
			return err
		}
		return s.Run()
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func tableRepository() domain.TableRepository {
	cfg := config.LoadConfig()
	return repository.NewFlatFileTableRepository(cfg.DataDirectory)
}

func configServerClient() *client.ConfigServerClient {
	return client.NewConfigServerClient(config.LoadConfig().ConfigServerUrl)
}
