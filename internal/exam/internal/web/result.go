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
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/errs"
)

// Result 所有接口统一的返回结构
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	// 校验失败的时候返回全部原因
	Errors []string `json:"errors,omitempty"`
}

func ok(data any) Result {
	return Result{Success: true, Data: data}
}

func failure(status int, msg string) (int, Result) {
	return status, Result{Message: msg}
}

// errorResult 把错误类型映射成 HTTP 状态码，内部错误不会把细节返回给前端
func errorResult(err error) (int, Result) {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		var ve *errs.ValidationError
		errors.As(err, &ve)
		return http.StatusBadRequest, Result{
			Message: errs.InvalidArgument.Msg,
			Errors:  ve.Violations,
		}
	case errs.KindNotFound:
		return failure(http.StatusNotFound, notFoundMessage(err))
	case errs.KindForbidden:
		return failure(http.StatusForbidden, errs.ErrForbidden.Error())
	default:
		return failure(http.StatusInternalServerError, errs.SystemError.Msg)
	}
}

func notFoundMessage(err error) string {
	var ne *errs.NotFoundError
	switch {
	case errors.As(err, &ne):
		return ne.Msg
	case errors.Is(err, errs.ErrAttemptNotFound):
		return errs.ErrAttemptNotFound.Error()
	case errors.Is(err, errs.ErrQuestionNotFound):
		return errs.ErrQuestionNotFound.Error()
	default:
		return errs.ErrNoQuestions.Error()
	}
}

func abort(ctx *gin.Context, status int, res Result) {
	ctx.AbortWithStatusJSON(status, res)
}
