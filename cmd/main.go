package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"RokeNote-App/internal/domain/service"
	"RokeNote-App/internal/handler"
	"RokeNote-App/internal/infrastructure/ai"
	"RokeNote-App/internal/infrastructure/suntimes"
	"RokeNote-App/internal/session"
	"RokeNote-App/internal/usecase"
)

// defaultPassword APP_PASSWORD未設定時の開発用デフォルト（本番では必ず変更すること）
const defaultPassword = "admin123"

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: GEMINI_API_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	appPassword := os.Getenv("APP_PASSWORD")
	if appPassword == "" {
		fmt.Println("Warning: APP_PASSWORD not set, using default password")
		appPassword = defaultPassword
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	sessionTTL := 60 * time.Minute
	if value := os.Getenv("SESSION_TTL_MINUTES"); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil && minutes > 0 {
			sessionTTL = time.Duration(minutes) * time.Minute
		}
	}

	// 依存関係の組み立て
	sessions := session.NewStore(sessionTTL)
	geminiClient := ai.NewGeminiClient(geminiAPIKey)
	spotRepo := ai.NewGeminiSpotRepository(geminiClient)
	sunTimesProvider := suntimes.NewSunriseSunsetProvider()
	cardService := service.NewSpotCardService()

	suggestionUseCase := usecase.NewSpotSuggestionUseCase(sessions, spotRepo, cardService)
	identifyUseCase := usecase.NewSpotIdentifyUseCase(sessions, spotRepo, cardService)
	sunTimeUseCase := usecase.NewSunTimeUseCase(sunTimesProvider)
	exportUseCase := usecase.NewExportUseCase(sessions)

	authHandler := handler.NewAuthHandler(sessions, appPassword)
	tagHandler := handler.NewTagHandler(sessions)
	suggestionHandler := handler.NewSpotSuggestionHandler(suggestionUseCase)
	identifyHandler := handler.NewSpotIdentifyHandler(identifyUseCase)
	sunTimeHandler := handler.NewSunTimeHandler(sunTimeUseCase)
	exportHandler := handler.NewExportHandler(exportUseCase)

	// ルーティングの設定
	r := gin.Default()

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "RokeNote-App"})
	})

	r.POST("/auth/login", authHandler.PostLogin)

	authorized := r.Group("/", handler.SessionAuthMiddleware(sessions))
	{
		authorized.GET("/stamps", tagHandler.GetStamps)
		authorized.GET("/cities", sunTimeHandler.GetCities)

		authorized.GET("/session/tags", tagHandler.GetTags)
		authorized.POST("/session/tags", tagHandler.PostTag)
		authorized.DELETE("/session/tags", tagHandler.DeleteTags)

		authorized.POST("/spots/suggestions", suggestionHandler.PostSuggestions)
		authorized.POST("/spots/identify", identifyHandler.PostIdentify)

		authorized.GET("/suntimes", sunTimeHandler.GetSunTimes)
		authorized.GET("/export", exportHandler.GetExport)
	}

	fmt.Printf("RokeNote-App server starting on :%s...\n", port)
	log.Fatal(r.Run(":" + port))
}
