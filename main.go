package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"karkhana/config"
	"karkhana/database"
	employerRepoPkg "karkhana/database/repository/employer"
	jobseekerRepoPkg "karkhana/database/repository/jobseeker"
	"karkhana/handlers"
	"karkhana/middleware"
	"karkhana/routes"
	employerSvc "karkhana/services/employer"
	jobseekerSvc "karkhana/services/jobseeker"
	"karkhana/services/verify"
	"karkhana/tasks"
	"karkhana/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	tasks.InitClient()
	worker := tasks.StartWorker()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	seekerRepo := jobseekerRepoPkg.NewMongoJobSeekerRepo()
	empRepo := employerRepoPkg.NewMongoEmployerRepo()

	// external lookup clients.
	gstClient := verify.NewGSTClient(config.AppConfig.GSTAPIBase, config.AppConfig.GSTAPIKey)
	pincodeClient := verify.NewPincodeClient(config.AppConfig.PincodeAPIBase)

	// services.
	seekerService := &jobseekerSvc.DefaultJobSeekerService{
		Repo:    seekerRepo,
		Storage: cloudinaryStorageService,
	}
	employerService := &employerSvc.DefaultEmployerService{
		Repo:    empRepo,
		GST:     gstClient,
		Tracker: verify.NewTracker(),
		Storage: cloudinaryStorageService,
		Cache:   employerSvc.NewRedisVerificationCache(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		JobSeekerRepo: seekerRepo,
		EmployerRepo:  empRepo,

		JobSeekerInitiateHandler:  handlers.JobSeekerInitiateHandler(seekerService),
		JobSeekerVerifyOTPHandler: handlers.JobSeekerVerifyOTPHandler(seekerService),
		PersonalInfoHandler:       handlers.PersonalInfoHandler(seekerService),
		AcademicInfoHandler:       handlers.AcademicInfoHandler(seekerService),
		ExperiencesHandler:        handlers.ExperiencesHandler(seekerService),
		GetExperiencesHandler:     handlers.GetExperiencesHandler(seekerService),
		PreferencesHandler:        handlers.PreferencesHandler(seekerService),
		ProfileMediaHandler:       handlers.ProfileMediaHandler(seekerService),

		EmployerInitiateHandler:  handlers.EmployerInitiateHandler(employerService),
		EmployerVerifyOTPHandler: handlers.EmployerVerifyOTPHandler(employerService),
		VerifyGSTINHandler:       handlers.VerifyGSTINHandler(employerService),
		EmployerRegisterHandler:  handlers.EmployerRegisterHandler(employerService),
		ContactInfoHandler:       handlers.ContactInfoHandler(employerService),

		PincodeLookupHandler: handlers.PincodeLookupHandler(pincodeClient),
	}

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight work before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	worker.Shutdown()
	tasks.CloseClient()
	logger.Info("Server exited")
}
