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

package exam

import (
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/domain"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/event"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/service"
	"github.com/sridharaakam360/MCQ1/internal/exam/internal/web"
)

type Service = service.Service
type Handler = web.Handler
type ExamSubmittedEventConsumer = event.ExamSubmittedEventConsumer

type Attempt = domain.Attempt
type Allotment = domain.Allotment
type TimeAllocator = domain.TimeAllocator

const ExamSubmittedTopic = event.ExamSubmittedTopic
