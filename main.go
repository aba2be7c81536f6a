package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"todoapi/config"
	"todoapi/models"
	"todoapi/routes"
)

func main() {
	db := config.ConnectDB()
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	r := routes.SetupRouter(db)

	addr := ":8000"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	logrus.Infof("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
