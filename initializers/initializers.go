package initializers

import (
	"context"

	"survey-tools-backend/config"
	"survey-tools-backend/fiberlog"
	answerhandler "survey-tools-backend/lib/answer"
	authhandler "survey-tools-backend/lib/auth"
	emailverify "survey-tools-backend/lib/email-verify"
	xlsexport "survey-tools-backend/lib/export/xls"
	formhandler "survey-tools-backend/lib/form"
	statshandler "survey-tools-backend/lib/stats"
	usershandler "survey-tools-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	emailverify.Instance = emailverify.NewInstance(config.Conf.Smtp.EmailSendVerification)
	authhandler.NewHandler()
	usershandler.NewHandler()
	formhandler.NewHandler()
	answerhandler.NewHandler()
	statshandler.NewHandler()
	xlsexport.NewHandler()
}
