// Command calcd serves expression evaluation over HTTP and records every
// evaluation in Postgres.
package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("no .env file")
	}

	db, err := openDatabase(os.Getenv("POSTGRES_URL"))
	if err != nil {
		logger.Fatal().Err(err).Msg("connecting to database")
	}

	s := &server{db: db, log: logger}

	router := gin.Default()
	router.POST("/expressions", s.addExpression)
	router.GET("/expressions", s.listExpressions)
	router.GET("/expressions/:id", s.getExpression)
	router.GET("/functions", s.listFunctions)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("listening")
	if err := router.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
