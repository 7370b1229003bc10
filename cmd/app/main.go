package main

import (
	"os"

	dbadapter "didgah/internal/adapters/database"
	"didgah/internal/adapters/httpapi"
	"didgah/internal/config"
	postapp "didgah/internal/core/post/service"
	"didgah/internal/core/validation"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init() // بارگذاری تنظیمات از .env

	// اتصال به Firestore؛ اگر در دسترس نباشد همین‌جا متوقف می‌شویم
	config.InitFirestore()

	// بستن منابع بعد از اتمام کار سرور
	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	postRepo := dbadapter.NewPostRepositoryDatabase(config.FirestoreClient) // آداپتر خروجی
	userRepo := dbadapter.NewUserRepositoryDatabase(config.FirestoreClient) // آداپتر خروجی
	postSvc := postapp.NewPostService(postRepo, userRepo, config.Logger)    // یوزکیس/سرویس
	v := validation.NewPostBodyValidator()
	r := httpapi.SetupRoutes(postSvc, v) // تزریق یوزکیس به آداپتر ورودی

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	// اجرای سرور Gin (در اینجا سرور به صورت بلوکینگ عمل می‌کند)
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources بستن اتصال به Firestore
func closeResources(logger *zap.Logger) {
	if err := config.FirestoreClient.Close(); err != nil {
		logger.Error("Error closing Firestore connection:", zap.Error(err))
	}
}
