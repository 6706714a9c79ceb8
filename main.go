package main

import (
	"github.com/Watergold12/alumni-notifier/controller"
	"github.com/Watergold12/alumni-notifier/dao"
	_ "github.com/Watergold12/alumni-notifier/docs"
	"github.com/Watergold12/alumni-notifier/log"
	"github.com/Watergold12/alumni-notifier/service"
	"github.com/Watergold12/alumni-notifier/service/dto"
	"github.com/Watergold12/alumni-notifier/telegram"
	"github.com/Watergold12/alumni-notifier/util"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title Alumni notifier HTTP API
// @description Automated birthday greetings for alumni

func init() {
	log.WarnIfErr("Loading .env:", godotenv.Load())
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	//secrets and the store binding are read once here and passed down
	dsn := util.GetEnv("DATABASE_URL", "")
	token := util.GetEnv("TELEGRAM_BOT_TOKEN", "")
	chatId := util.GetEnv("TELEGRAM_CHAT_ID", "")

	//an unbound store degrades to empty recipient sets, it must not kill the process
	var alumniDao dao.AlumniDao
	var deliveryDao dao.DeliveryDao
	if util.IsBlank(dsn) {
		log.Warn.Println("DATABASE_URL is not set, alumni store is unbound")
	} else {
		dbClient, err := dao.GetClient(dsn)
		if err != nil {
			log.Error.Println("Cannot open alumni store:", err)
		} else {
			alumniDao = dao.NewAlumniDao(dbClient)
			deliveryDao = dao.NewDeliveryDao(dbClient)
		}
	}

	notifier := telegram.NewNotifier(token, chatId)

	srv := service.NewService(notifier, alumniDao, deliveryDao)

	//start scheduled daily pass
	runAt := util.GetEnv("SCHEDULE_AT", "")
	if !util.IsBlank(runAt) {
		go srv.RunOnSchedule(runAt)
	}

	envCheck := dto.EnvCheck{
		DatabaseBound:       alumniDao != nil,
		TelegramBotTokenSet: token != "",
		TelegramChatIdSet:   chatId != "",
	}

	//attach http handlers
	e := echo.New()
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.HideBanner = true
	e.Use(middleware.BodyLimit("2K"))

	bindRoutes(e, srv, envCheck)

	//start http server
	log.Fatal(e.Start(":" + util.GetEnv("HTTP_PORT", "8080")))
}

func bindRoutes(e *echo.Echo, srv service.Service, envCheck dto.EnvCheck) {

	e.Any("/dry-run", controller.GetDryRunFunc(srv))

	e.POST("/trigger", controller.GetTriggerFunc(srv))

	e.Any("/debug-env", controller.GetDebugEnvFunc(envCheck))

	e.Any("/*", controller.GetRootFunc())
}
