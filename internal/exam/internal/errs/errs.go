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

package errs

import (
	"errors"
	"strings"
)

// Kind 错误的分类，和 HTTP 状态码无关，由 web 层负责映射
type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
)

var (
	ErrAttemptNotFound  = errors.New("Test result not found")
	ErrQuestionNotFound = errors.New("Question not found")
	ErrNoQuestions      = errors.New("No questions found for the selected criteria")
	ErrForbidden        = errors.New("Not authorized to access this resource")
)

// ValidationError 包含全部的校验失败原因
type ValidationError struct {
	Violations []string
}

func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// NotFoundError 带上具体原因的 ErrNoQuestions，比如某个考试类型下面一道题都没有
type NotFoundError struct {
	Msg   string
	Cause error
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

func KindOf(err error) Kind {
	var ve *ValidationError
	var ne *NotFoundError
	switch {
	case err == nil:
		return KindInternal
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &ne),
		errors.Is(err, ErrAttemptNotFound),
		errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrNoQuestions):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	default:
		return KindInternal
	}
}
