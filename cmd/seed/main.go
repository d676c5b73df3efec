// Command seed provisions the initial admin, driver and product records.
// Safe to re-run: existing emails are left untouched.
package main

import (
	"errors"

	"mozeh-api/config"
	"mozeh-api/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func upsertUser(name, email, password, phone string, role models.UserRole) {
	var existing models.User
	err := config.DB.First(&existing, "email = ?", email).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Fatal("seed lookup failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Fatal("seed hash failed")
	}
	user := models.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(hash),
		Role:     role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		logrus.WithError(err).Fatal("seed user create failed")
	}
	logrus.WithField("email", email).WithField("role", role).Info("seeded user")
}

func seedProduct(nameAr string, price float64, imageURL *string, inStock int) {
	var existing models.Product
	err := config.DB.First(&existing, "name_ar = ?", nameAr).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithError(err).Fatal("seed lookup failed")
	}
	product := models.Product{NameAr: nameAr, Price: price, ImageURL: imageURL, InStock: inStock}
	if err := config.DB.Create(&product).Error; err != nil {
		logrus.WithError(err).Fatal("seed product create failed")
	}
	logrus.WithField("product", nameAr).Info("seeded product")
}

func main() {
	config.InitDB()

	upsertUser("Mozeh Admin", "admin@mozeh.local", "admin123", "0999999999", models.RoleAdmin)
	upsertUser("Driver One", "driver1@mozeh.local", "driver123", "0991111111", models.RoleDriver)
	upsertUser("Driver Two", "driver2@mozeh.local", "driver123", "0992222222", models.RoleDriver)

	crispyImage := "/images/crispy.jpg"
	seedProduct("كريسبي 2", 50, &crispyImage, 30)
	seedProduct("كبة لبنية", 45, nil, 40)
	seedProduct("روستيد 2 كغ", 55, nil, 20)

	logrus.Info("seed done")
}
