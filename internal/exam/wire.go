//go:build wireinject

package exam

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/event"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/repository"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/repository/cache"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/service"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/web"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	sp session.Provider) (*Module, error) {
	wire.Build(
		InitQuestionDAO,
		InitAttemptDAO,
		InitConfig,
		cache.NewExamECache,
		repository.NewQuestionRepository,
		repository.NewAttemptRepository,
		event.NewExamSubmittedEventProducer,
		initExamSubmittedConsumer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
