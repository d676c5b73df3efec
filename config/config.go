package config

import (
	"os"

	"mozeh-api/models"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "mozeh_shop_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// UploadDir is where the disk store keeps uploaded images.
func UploadDir() string {
	return getEnv("UPLOAD_DIR", "uploads")
}

// UploadDriver selects the blob store backend: "disk" (default) or "s3".
func UploadDriver() string {
	return getEnv("UPLOAD_DRIVER", "disk")
}

// S3Bucket is the target bucket when UPLOAD_DRIVER=s3.
func S3Bucket() string {
	return getEnv("S3_BUCKET", "")
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "mozeh_shop.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	logrus.Info("database connected and migrated")
}
