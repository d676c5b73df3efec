package handlers

import (
	"errors"
	"net/http"

	"mozeh-api/config"
	"mozeh-api/middleware"
	"mozeh-api/models"
	"mozeh-api/service"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userSummary(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

// Register creates a new customer account
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "الرجاء إدخال جميع البيانات المطلوبة"})
		return
	}

	users := service.NewUserService(config.DB)
	user, err := users.Register(req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondServiceError(c, err, "البريد الإلكتروني مستخدم مسبقاً")
			return
		}
		respondServiceError(c, err, "فشل إنشاء الحساب")
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondServiceError(c, err, "فشل إنشاء الحساب")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "تم إنشاء الحساب بنجاح",
		"token":   token,
		"user":    userSummary(user),
	})
}

// Login authenticates a user and returns a JWT. Unknown email and wrong
// password produce identical responses.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "الرجاء إدخال البريد الإلكتروني وكلمة المرور"})
		return
	}

	users := service.NewUserService(config.DB)
	user, err := users.Authenticate(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "البريد الإلكتروني أو كلمة المرور غير صحيحة")
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondServiceError(c, err, "حدث خطأ أثناء تسجيل الدخول")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "تم تسجيل الدخول بنجاح",
		"token":   token,
		"user":    userSummary(user),
	})
}

// WhoAmI returns the authenticated user's profile
func WhoAmI(c *gin.Context) {
	users := service.NewUserService(config.DB)
	user, err := users.GetByID(middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile edits the caller's contact details
func UpdateProfile(c *gin.Context) {
	var req service.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users := service.NewUserService(config.DB)
	user, err := users.UpdateProfile(middleware.GetUserID(c), req)
	if err != nil {
		respondServiceError(c, err, "فشل تحديث الحساب")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم تحديث الحساب بنجاح", "user": user})
}

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// UploadAvatar stores a profile image and records its URL. The old avatar
// blob is removed after the record update succeeds.
func UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "لم يتم رفع أي ملف"})
		return
	}
	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "نوع الملف غير مدعوم (PNG أو JPG فقط)"})
		return
	}

	url, err := uploads.Save(file, "avatars")
	if err != nil {
		respondServiceError(c, err, "فشل رفع الصورة")
		return
	}

	users := service.NewUserService(config.DB)
	user, previous, err := users.SetAvatar(middleware.GetUserID(c), url)
	if err != nil {
		respondServiceError(c, err, "فشل رفع الصورة")
		return
	}
	if previous != "" {
		// best effort, the record already points at the new blob
		_ = uploads.Remove(previous)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "تم تحديث الصورة بنجاح",
		"avatarUrl": url,
		"user":      user,
	})
}
