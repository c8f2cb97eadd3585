package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mydb/internal/platform/config"
	"mydb/internal/platform/server/handler/dbinstance"
	"mydb/internal/platform/server/handler/health"
	"mydb/internal/platform/server/handler/statement"
	"mydb/internal/platform/server/handler/table"
)

type Server struct {
	httpAddr string
	engine   *chi.Mux
}

func NewServer(cfg config.Config,
	tables *table.TableHandler,
	statements *statement.StatementHandler,
	instances *dbinstance.DbInstanceHandler) Server {
	srv := Server{
		engine:   chi.NewRouter(),
		httpAddr: fmt.Sprintf(":%d", cfg.ServerPort),
	}
	srv.engine.Use(middleware.Logger)
	srv.registerRoutes(tables, statements, instances)
	return srv
}

func (s *Server) Run() error {
	log.Println("Server Running on:", s.httpAddr)
	return http.ListenAndServe(s.httpAddr, s.engine)
}

func (s *Server) registerRoutes(tables *table.TableHandler,
	statements *statement.StatementHandler,
	instances *dbinstance.DbInstanceHandler) {
	s.engine.Get("/health", health.CheckHandler)
	s.engine.Post("/tables", tables.CreateTable)
	s.engine.Post("/tables/{name}/rows", tables.InsertRow)
	s.engine.Get("/tables/{name}/rows", tables.QueryTable)
	s.engine.Get("/tables/{name}/length", tables.TableLength)
	s.engine.Post("/statements", statements.ParseStatement)
	s.engine.Put("/instances", instances.UpdateDbInstances)
}
