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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/errs"
)

type handleFunc func(ctx *ginx.Context, sess session.Session) (any, error)

// bind 按照请求方法和 Content-Type 解析参数，GET 请求解析 query
func bind[Req any](fn func(ctx *ginx.Context, req Req, sess session.Session) (any, error)) handleFunc {
	return func(ctx *ginx.Context, sess session.Session) (any, error) {
		var req Req
		if err := ctx.ShouldBind(&req); err != nil {
			return nil, errs.NewValidationError(err.Error())
		}
		return fn(ctx, req, sess)
	}
}

// wrap 取出登录信息，执行业务逻辑，再按照统一的结构返回。
// 内部错误只记录日志，返回给前端的是通用的提示
func (h *Handler) wrap(fn handleFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := &ginx.Context{Context: c}
		sess, err := h.session(ctx)
		if err != nil {
			abort(c, http.StatusUnauthorized, Result{Message: errs.Unauthenticated.Msg})
			return
		}
		data, err := fn(ctx, sess)
		if err != nil {
			status, res := errorResult(err)
			if status == http.StatusInternalServerError {
				h.logger.Error("处理请求失败",
					elog.FieldErr(err),
					elog.String("path", c.FullPath()),
					elog.Int64("uid", sess.Claims().Uid))
			}
			abort(c, status, res)
			return
		}
		c.JSON(http.StatusOK, ok(data))
	}
}

// session 中间件已经校验过登录态的时候直接复用
func (h *Handler) session(ctx *ginx.Context) (session.Session, error) {
	if val, exists := ctx.Get(session.CtxSessionKey); exists {
		if sess, ok := val.(session.Session); ok {
			return sess, nil
		}
	}
	return h.sp.Get(ctx)
}

func isAdmin(sess session.Session) bool {
	return sess.Claims().Get("admin").StringOrDefault("") == "true"
}
