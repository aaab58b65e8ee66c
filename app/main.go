package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/jakduk/jakduk-go/internal/repository/mysql"
	redisRepo "github.com/jakduk/jakduk-go/internal/repository/redis"

	"github.com/jakduk/jakduk-go/internal/notification"
	"github.com/jakduk/jakduk-go/internal/rest"
	"github.com/jakduk/jakduk-go/internal/rest/middleware"
	"github.com/jakduk/jakduk-go/internal/usecase/article"
	"github.com/jakduk/jakduk-go/internal/usecase/comment"
	"github.com/jakduk/jakduk-go/internal/usecase/feeling"
	"github.com/jakduk/jakduk-go/internal/usecase/home"
	"github.com/jakduk/jakduk-go/internal/usecase/user"
	"github.com/jakduk/jakduk-go/internal/workers"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Seoul")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))
	route.Use(middleware.ViewerKeyMiddleware())

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	articleRepo := mysqlRepo.NewArticleRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	feelingRepo := mysqlRepo.NewFeelingRepository(db)
	galleryRepo := mysqlRepo.NewGalleryRepository(db)
	encyclopediaRepo := mysqlRepo.NewEncyclopediaRepository(db)
	descRepo := mysqlRepo.NewHomeDescriptionRepository(db)

	viewCache := redisRepo.NewViewCache(client)
	homeCache := redisRepo.NewHomeCache(client)

	// Start workers
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	viewsSyncer := workers.NewSyncViewsWorker(articleRepo, viewCache)
	go viewsSyncer.Start(ctx)

	dispatcher := workers.NewNotificationWorker(notification.NewLogNotifier())
	go dispatcher.Start(ctx)

	// Build service layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = 24
	}

	articleSvc := article.NewService(articleRepo, commentRepo, feelingRepo, userRepo, viewCache)
	commentSvc := comment.NewService(commentRepo, articleRepo, feelingRepo, userRepo, dispatcher)
	feelingSvc := feeling.NewService(feelingRepo, articleRepo, commentRepo, userRepo, dispatcher)
	homeSvc := home.NewService(articleRepo, commentRepo, galleryRepo, userRepo, descRepo, encyclopediaRepo, homeCache)
	userSvc := user.NewService(userRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)

	articleHandler := rest.NewArticleHandler(articleSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	feelingHandler := rest.NewFeelingHandler(feelingSvc)
	homeHandler := rest.NewHomeHandler(homeSvc)
	userHandler := rest.NewUserHandler(userSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))
	optionalAuth := middleware.OptionalAuthMiddleware(string(jwtSecret))

	// Register routes
	api := route.Group("/api")

	api.POST("/register", userHandler.Register)
	api.POST("/login", userHandler.Login)

	api.GET("/home/latest", homeHandler.Latest)
	api.GET("/home/encyclopedia", homeHandler.Encyclopedia)

	api.GET("/board/:board", articleHandler.List)
	api.GET("/board/:board/:seq", optionalAuth, articleHandler.GetBySeq)
	api.GET("/board/:board/:seq/comments", commentHandler.FetchCommentsByArticle)
	api.GET("/board/:board/:seq/feeling/users", feelingHandler.ArticleFeelingUsers)

	authorized := api.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.PUT("/password", userHandler.EditPassword)

		authorized.POST("/board/:board", articleHandler.Write)
		authorized.PUT("/board/:board/:seq", articleHandler.Edit)
		authorized.DELETE("/board/:board/:seq", articleHandler.Delete)
		authorized.POST("/board/:board/:seq/feeling/:feeling", feelingHandler.SetArticleFeeling)

		authorized.POST("/board/:board/:seq/comments", commentHandler.CreateComment)
		authorized.DELETE("/comment/:id", commentHandler.DeleteComment)
		authorized.POST("/comment/:id/feeling/:feeling", feelingHandler.SetCommentFeeling)
	}

	// Start server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for workers to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
