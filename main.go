package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"leave-tracking-backend/config"
	apiv1 "leave-tracking-backend/controllers/v1"
	"leave-tracking-backend/fiberlog"
	"leave-tracking-backend/initializers"
	"leave-tracking-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // limit of 10MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)

	//профиль
	profile := fiber.New()
	apiV1.Mount("/profile", profile)
	profile.Use(middleware.AuthorizationRequired())
	apiv1.InitProfileApiRouters(profile)

	//заявки на отпуск
	leave := fiber.New()
	apiV1.Mount("/leave", leave)
	leave.Use(middleware.AuthorizationRequired())
	apiv1.InitLeaveApiRouters(leave)

	//админка
	adminPanel := fiber.New()
	apiV1.Mount("/admin", adminPanel)
	adminPanel.Use(middleware.AuthorizationRequired())
	adminPanel.Use(middleware.AdminRoleRequired())
	apiv1.InitAdminApiRouters(adminPanel)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
