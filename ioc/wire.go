//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/sridharaakam360/MCQ1/internal/exam"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		exam.InitModule,
		initMQConsumers,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
