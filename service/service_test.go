package service

import (
	"fmt"
	"testing"

	"mozeh-api/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{
		Name:     name,
		Email:    email,
		Phone:    "0990000000",
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func sampleOrderInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName: "Test Customer",
		Phone:        "0991234567",
		Address:      "Test street 1",
		Items: []OrderItemInput{
			{ProductID: "p1", NameAr: "كريسبي 2", Price: 50, Qty: 2},
			{ProductID: "p2", NameAr: "كبة لبنية", Price: 45, Qty: 1},
		},
	}
}
