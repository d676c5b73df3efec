package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mozeh-api/config"
	"mozeh-api/middleware"
	"mozeh-api/models"
	"mozeh-api/service"

	"github.com/gin-gonic/gin"
)

// AdminGetStats returns the dashboard counters
func AdminGetStats(c *gin.Context) {
	orders := service.NewOrderService(config.DB)
	stats, err := orders.GetStats()
	if err != nil {
		respondServiceError(c, err, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminGetAllOrders returns every order with customer and driver joined
func AdminGetAllOrders(c *gin.Context) {
	orders := service.NewOrderService(config.DB)
	list, err := orders.ListAll()
	if err != nil {
		respondServiceError(c, err, "فشل تحميل الطلبات")
		return
	}
	c.JSON(http.StatusOK, list)
}

// AdminGetDrivers lists all driver accounts
func AdminGetDrivers(c *gin.Context) {
	users := service.NewUserService(config.DB)
	drivers, err := users.ListDrivers()
	if err != nil {
		respondServiceError(c, err, "فشل تحميل السائقين")
		return
	}
	c.JSON(http.StatusOK, drivers)
}

type AssignDriverRequest struct {
	DriverID string `json:"driverId" binding:"required"`
}

// AdminAssignDriver links a driver to an order (PENDING → ASSIGNED, or
// re-targets a still-ASSIGNED order)
func AdminAssignDriver(c *gin.Context) {
	var req AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Driver ID is required"})
		return
	}

	orders := service.NewOrderService(config.DB)
	order, err := orders.AssignDriver(c.Param("id"), req.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			respondServiceError(c, err, "Invalid driver")
		case errors.Is(err, service.ErrNotFound):
			respondServiceError(c, err, "Order not found")
		default:
			respondServiceError(c, err, "فشل تعيين السائق")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "تم تعيين السائق بنجاح",
		"order":   order,
	})
}

// AdminCancelOrder cancels an order still in PENDING or ASSIGNED
func AdminCancelOrder(c *gin.Context) {
	orders := service.NewOrderService(config.DB)
	order, err := orders.Cancel(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "فشل إلغاء الطلب")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم إلغاء الطلب", "order": order})
}

// AdminGetProducts lists the catalog for the admin panel
func AdminGetProducts(c *gin.Context) {
	products := service.NewProductService(config.DB)
	list, err := products.List()
	if err != nil {
		respondServiceError(c, err, "Error loading products")
		return
	}
	c.JSON(http.StatusOK, list)
}

// productForm reads the multipart fields shared by create and update. The
// image file is optional; when present it is stored and its URL returned.
// A missing or unparseable stock count defaults to 0; the price must parse.
func productForm(c *gin.Context) (nameAr string, price float64, inStock int, imageURL *string, ok bool) {
	nameAr = c.PostForm("name_ar")
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "سعر المنتج غير صالح"})
		return "", 0, 0, nil, false
	}
	inStock, _ = strconv.Atoi(c.PostForm("inStock"))

	file, err := c.FormFile("image")
	if err == nil {
		if !allowedImageTypes[file.Header.Get("Content-Type")] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "نوع الملف غير مدعوم (PNG أو JPG فقط)"})
			return "", 0, 0, nil, false
		}
		url, err := uploads.Save(file, "products")
		if err != nil {
			respondServiceError(c, err, "فشل رفع الصورة")
			return "", 0, 0, nil, false
		}
		imageURL = &url
	}
	return nameAr, price, inStock, imageURL, true
}

// AdminCreateProduct adds a catalog entry (multipart, optional image)
func AdminCreateProduct(c *gin.Context) {
	nameAr, price, inStock, imageURL, ok := productForm(c)
	if !ok {
		return
	}

	products := service.NewProductService(config.DB)
	product, err := products.Create(nameAr, price, inStock, imageURL)
	if err != nil {
		respondServiceError(c, err, "فشل إضافة المنتج")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم إضافة المنتج بنجاح", "product": product})
}

// AdminUpdateProduct edits a catalog entry; omitting the image keeps the old one
func AdminUpdateProduct(c *gin.Context) {
	nameAr, price, inStock, imageURL, ok := productForm(c)
	if !ok {
		return
	}

	products := service.NewProductService(config.DB)
	product, err := products.Update(c.Param("id"), nameAr, price, inStock, imageURL)
	if err != nil {
		respondServiceError(c, err, "فشل تحديث المنتج")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم تحديث المنتج", "product": product})
}

// AdminDeleteProduct hard-deletes a product. Historical orders keep their
// snapshots and are unaffected.
func AdminDeleteProduct(c *gin.Context) {
	products := service.NewProductService(config.DB)
	if err := products.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err, "فشل حذف المنتج")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم حذف المنتج"})
}

// AdminAdvanceOrderStatus lets an admin move an order forward on a driver's
// behalf; ownership checks are bypassed for the ADMIN role.
func AdminAdvanceOrderStatus(c *gin.Context) {
	advanceOrderStatus(c, middleware.GetUserID(c), models.RoleAdmin)
}
