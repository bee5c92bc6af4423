// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/domain"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/errs"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/service"
)

type Handler struct {
	svc    service.Service
	sp     session.Provider
	logger *elog.Component
}

func NewHandler(svc service.Service, sp session.Provider) *Handler {
	return &Handler{
		svc:    svc,
		sp:     sp,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/questions/calculate-time", h.wrap(bind(h.CalculateTime)))
	server.GET("/questions", h.wrap(bind(h.Questions)))

	g := server.Group("/tests")
	g.POST("/submit", h.wrap(bind(h.Submit)))
	g.GET("/filters", h.wrap(h.Filters))
	g.GET("/history", h.wrap(bind(h.History)))
	g.GET("/history/:userId", h.wrap(bind(h.UserHistory)))
	g.GET("/stats", h.wrap(h.Stats))
	g.GET("/results/:testId", h.wrap(h.detail("testId")))
	g.GET("/:id", h.wrap(h.detail("id")))
}

// AdminRoutes 运维使用
func (h *Handler) AdminRoutes(server *gin.Engine) {
	server.DELETE("/tests/cache", h.wrap(h.ClearCache))
}

func (h *Handler) CalculateTime(ctx *ginx.Context, req CalculateTimeReq, sess session.Session) (any, error) {
	if req.Questions == nil {
		return nil, errs.NewValidationError("questions is required")
	}
	res, err := h.svc.CalculateTime(ctx, *req.Questions)
	if err != nil {
		return nil, err
	}
	return newAllotment(res), nil
}

func (h *Handler) Questions(ctx *ginx.Context, req QuestionsReq, sess session.Session) (any, error) {
	qs, allotment, err := h.svc.Questions(ctx, domain.QuestionFilter{
		SubjectId: req.SubjectId,
		Degree:    domain.Degree(req.Degree),
		Count:     req.Count,
	})
	if err != nil {
		return nil, err
	}
	return newQuestionList(qs, allotment), nil
}

func (h *Handler) Filters(ctx *ginx.Context, sess session.Session) (any, error) {
	res, err := h.svc.Filters(ctx)
	if err != nil {
		return nil, err
	}
	return newFilters(res), nil
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (any, error) {
	res, err := h.svc.Submit(ctx, sess.Claims().Uid, req.toDomain())
	if err != nil {
		return nil, err
	}
	return newSubmitResult(res), nil
}

func (h *Handler) History(ctx *ginx.Context, req HistoryReq, sess session.Session) (any, error) {
	return h.history(ctx, sess.Claims().Uid, req)
}

// UserHistory 只有本人和管理员可以查看
func (h *Handler) UserHistory(ctx *ginx.Context, req HistoryReq, sess session.Session) (any, error) {
	uid, err := idParam(ctx, "userId")
	if err != nil {
		return nil, err
	}
	if uid != sess.Claims().Uid && !isAdmin(sess) {
		return nil, errs.ErrForbidden
	}
	return h.history(ctx, uid, req)
}

func (h *Handler) history(ctx *ginx.Context, uid int64, req HistoryReq) (any, error) {
	res, err := h.svc.History(ctx, uid, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	return newHistory(res), nil
}

func (h *Handler) Stats(ctx *ginx.Context, sess session.Session) (any, error) {
	res, err := h.svc.Stats(ctx, sess.Claims().Uid)
	if err != nil {
		return nil, err
	}
	return newStats(res), nil
}

func (h *Handler) detail(param string) handleFunc {
	return func(ctx *ginx.Context, sess session.Session) (any, error) {
		id, err := idParam(ctx, param)
		if err != nil {
			return nil, err
		}
		res, err := h.svc.Detail(ctx, id, sess.Claims().Uid)
		if err != nil {
			return nil, err
		}
		return newTestDetail(res), nil
	}
}

func (h *Handler) ClearCache(ctx *ginx.Context, sess session.Session) (any, error) {
	if !isAdmin(sess) {
		return nil, errs.ErrForbidden
	}
	return nil, h.svc.ClearCache(ctx)
}

func idParam(ctx *ginx.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Context.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValidationError(name + " must be a positive integer")
	}
	return id, nil
}
