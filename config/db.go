package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the database named by the environment. The default is
// a local sqlite file so the server runs without external services; set
// DB_DRIVER=mysql and DB_DSN for a shared database.
func ConnectDB() *gorm.DB {
	driver := getenv("DB_DRIVER", "sqlite")

	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dsn := getenv("DB_DSN", "admin:12345678@tcp(127.0.0.1:3306)/tododbgo?charset=utf8mb4&parseTime=True&loc=Local")
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(getenv("DB_PATH", "todo.db"))
	default:
		logrus.Fatalf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	logrus.WithField("driver", driver).Info("connected to database")
	return db
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
