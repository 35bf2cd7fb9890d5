package initializers

import (
	"context"

	"leave-tracking-backend/config"
	"leave-tracking-backend/fiberlog"
	authhandler "leave-tracking-backend/lib/auth"
	xlsexport "leave-tracking-backend/lib/export/xls"
	leavehandler "leave-tracking-backend/lib/leave"
	usershandler "leave-tracking-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	usershandler.NewHandler()
	leavehandler.NewHandler()
	authhandler.NewHandler()
	xlsexport.NewHandler()
	InitDefaultAdmin()
}
